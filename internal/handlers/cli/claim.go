package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/claimwatch/internal/claimview"

	"github.com/urfave/cli/v3"
)

// claimCommand returns a CLI command that resolves the view of a claim QR code.
//
// Usage example:
//
//	claimwatch claim --qr-hash a1b2c3 --follow
func claimCommand(claims claimview.Service) *cli.Command {
	return &cli.Command{
		Name:        "claim",
		Description: "Resolve which view a claim QR code shows.",
		Usage:       "Prints the resolution. With --follow, keeps printing while the mint is pending.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "qr-hash",
				Usage:    "Hash encoded in the claim QR code",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "follow",
				Usage: "Keep polling while the mint is pending",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			qrHash := c.String("qr-hash")

			if !c.Bool("follow") {
				res, err := claims.Resolve(ctx, qrHash)
				if err != nil {
					return err
				}
				return printJSON(c.Root().Writer, res)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			resolutionCh, err := claims.Follow(ctx, qrHash)
			if err != nil {
				return err
			}

			for res := range resolutionCh {
				if err := printJSON(c.Root().Writer, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
