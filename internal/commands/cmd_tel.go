package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/validate"
)

type TelCmd struct {
	flags *Flags
	out   outputOpts
}

// NewTelCmd creates a new tel command.
func NewTelCmd(flags *Flags) *TelCmd {
	return &TelCmd{flags: flags}
}

// Register adds the tel command to the application.
func (cmd *TelCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tel",
		Usage:     "Generate a QR code that dials a phone number",
		UsageText: "qrforge tel <phone> --output <path>",
		ArgsUsage: "<phone>",
		Description: `Encodes a tel: URI. Scanning opens the dialer with the number filled in.

Examples:
  qrforge tel "+1 555 123 4567" -o call.png`,
		Flags:  cmd.out.flags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *TelCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("phone argument is required")
	}

	phone, err := validate.Phone(c.Args().First())
	if err != nil {
		return err
	}

	return generate(ctx, c, cmd.flags, &cmd.out, qr.Tel{Number: phone}, map[string]string{"phone": phone})
}
