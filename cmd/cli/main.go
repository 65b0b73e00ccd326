package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/keeperctl/internal/cli"
)

// main is the entrypoint for the keeperctl application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Startup faults and override failures surface as panics; they are
// recovered here so the process exits with a message instead of a stack trace.
func run(outW, logW io.Writer, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a fatal error occurred: %v", r)
		}
	}()

	root := cli.NewRoot(outW, logW, nil)
	root.SetArgs(args)
	root.SetOut(outW)
	root.SetErr(logW)

	return root.ExecuteContext(context.Background())
}
