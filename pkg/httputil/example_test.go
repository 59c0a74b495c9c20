package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecbingo/ecbingo/pkg/httputil"
)

func ExampleRetry() {
	attempt := 0
	err := httputil.Retry(context.Background(), 3, time.Millisecond, func() error {
		attempt++
		if attempt < 3 {
			return &httputil.RetryableError{Err: errors.New("503 service unavailable")}
		}
		return nil
	})
	fmt.Println("attempts:", attempt)
	fmt.Println("error:", err)
	// Output:
	// attempts: 3
	// error: <nil>
}
