package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that runs the HTTP server.
//
// Usage example:
//
//	claimwatch serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(serve ServeFunc) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the HTTP server exposing job watches and claim views.",
		Usage:       "Runs the HTTP server. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx)
		},
	}
}
