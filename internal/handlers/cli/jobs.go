package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/claimwatch/internal/jobwatch"

	"github.com/urfave/cli/v3"
)

// watchJobCommand returns a CLI command that follows a job until its
// transaction is mined, printing every snapshot.
//
// Usage example:
//
//	claimwatch watch --job 6f1c... --network layer2
//
// The command fails when the job finishes with an error or when it is
// interrupted before the job settles.
func watchJobCommand(jobs jobwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Follow a backend job until its transaction is mined.",
		Usage:       "Prints a snapshot each time the job advances. Stops on Ctrl+C.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "job",
				Usage:    "Queue message id returned by the backend",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "network",
				Usage: "Network the transaction is sent to (layer1, layer2). Defaults to the configured one",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var (
				jobID   = c.String("job")
				network = c.String("network")
			)

			sessionCh, err := jobs.Watch(ctx, network, jobID)
			if err != nil {
				return err
			}

			var last jobwatch.Session
			for snapshot := range sessionCh {
				if err := printJSON(c.Root().Writer, snapshot); err != nil {
					return err
				}
				last = snapshot
			}

			switch last.Phase {
			case jobwatch.PhaseDone:
				return nil
			case jobwatch.PhaseFailed:
				return fmt.Errorf("%w: %s", jobwatch.ErrJobFailed, last.Reason)
			default:
				return jobwatch.ErrWatchAbandoned
			}
		},
	}
}

// jobStatusCommand returns a CLI command that prints the last stored snapshot
// of a job.
//
// Usage example:
//
//	claimwatch status --job 6f1c...
func jobStatusCommand(jobs jobwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Print the last known snapshot of a watched job.",
		Usage:       "Reads the snapshot store. Requires Redis to be configured.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "job",
				Usage:    "Queue message id returned by the backend",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := jobs.LastKnown(ctx, c.String("job"))
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, session)
		},
	}
}
