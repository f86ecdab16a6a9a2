package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/validate"
)

type URLCmd struct {
	flags *Flags
	out   outputOpts
}

// NewURLCmd creates a new url command.
func NewURLCmd(flags *Flags) *URLCmd {
	return &URLCmd{flags: flags}
}

// Register adds the url command to the application.
func (cmd *URLCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "url",
		Usage:     "Generate a QR code for a URL",
		UsageText: "qrforge url <url> --output <path>",
		ArgsUsage: "<url>",
		Description: `Encodes a URL into a QR code image.

A missing scheme is filled in with https://.

Examples:
  qrforge url https://example.com -o code.png
  qrforge url example.com -o code.svg`,
		Flags:  cmd.out.flags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *URLCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("url argument is required")
	}

	u, err := validate.URL(c.Args().First())
	if err != nil {
		return err
	}

	return generate(ctx, c, cmd.flags, &cmd.out, qr.URL{Value: u}, map[string]string{"url": u})
}
