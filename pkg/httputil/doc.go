// Package httputil provides the HTTP plumbing shared by the emote catalog
// client and the board server.
//
// # Retry
//
// [Retry] re-runs an operation while it fails with a [RetryableError],
// doubling the delay between attempts:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// Callers decide what is transient. The catalog client retries transport
// failures and 5xx responses; 404 and 429 are returned immediately.
//
// # Clients
//
// [NewClient] builds an *http.Client with a timeout and a fixed User-Agent.
package httputil
