package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecbingo/ecbingo/internal/cli"
	"github.com/ecbingo/ecbingo/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cli.New(cli.LogInfo).Execute(ctx, os.Args[1:])
	code := errors.ExitCode(err)
	if err != nil && code != errors.ExitCanceled {
		fmt.Fprintln(os.Stderr, "ecbingo:", errors.UserMessage(err))
	}
	cancel()
	os.Exit(code)
}
