package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/validate"
)

type SmsCmd struct {
	flags *Flags
	out   outputOpts

	message string
}

// NewSmsCmd creates a new sms command.
func NewSmsCmd(flags *Flags) *SmsCmd {
	return &SmsCmd{flags: flags}
}

// Register adds the sms command to the application.
func (cmd *SmsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sms",
		Usage:     "Generate a QR code for an SMS",
		UsageText: "qrforge sms <phone> [--message <text>] --output <path>",
		ArgsUsage: "<phone>",
		Description: `Encodes an sms: intent. Scanning opens the messaging app with the
recipient and an optional pre-filled message.

Examples:
  qrforge sms "+1 555 123 4567" -o sms.png
  qrforge sms 5551234567 -m "On my way" -o sms.png`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "pre-filled message text",
				Destination: &cmd.message,
			},
		}, cmd.out.flags()...),
		Action: cmd.run,
	})

	return app
}

func (cmd *SmsCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("phone argument is required")
	}

	phone, err := validate.Phone(c.Args().First())
	if err != nil {
		return err
	}

	snapshot := map[string]string{"phone": phone}
	if cmd.message != "" {
		snapshot["message"] = cmd.message
	}

	return generate(ctx, c, cmd.flags, &cmd.out, qr.SMS{Phone: phone, Message: cmd.message}, snapshot)
}
