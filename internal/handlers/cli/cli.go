package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/claimwatch/internal/claimview"
	"github.com/gabapcia/claimwatch/internal/jobwatch"

	"github.com/urfave/cli/v3"
)

// ServeFunc runs the HTTP surface until ctx is done.
type ServeFunc func(ctx context.Context) error

// Run initializes and executes the claimwatch CLI application.
//
// It registers all available commands, including:
//
//   - `watch`: Follows a backend job until its transaction is mined.
//   - `status`: Prints the last stored snapshot of a job.
//   - `claim`: Resolves the view of a claim QR code.
//   - `serve`: Starts the HTTP server.
//
// Commands print JSON, one document per line, to stdout.
func Run(ctx context.Context, jobs jobwatch.Service, claims claimview.Service, serve ServeFunc) error {
	return newApp(jobs, claims, serve).Run(ctx, os.Args)
}

func newApp(jobs jobwatch.Service, claims claimview.Service, serve ServeFunc) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "claimwatch",
		Description:           "Follows backend jobs until their transaction is mined and resolves claim views.",
		Usage:                 "claimwatch [command] [flags]",
		Commands: []*cli.Command{
			watchJobCommand(jobs),
			jobStatusCommand(jobs),
			claimCommand(claims),
			serveCommand(serve),
		},
	}
}

func printJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
