package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/validate"
)

type EmailCmd struct {
	flags *Flags
	out   outputOpts

	subject string
	body    string
	cc      string
	bcc     string
}

// NewEmailCmd creates a new email command.
func NewEmailCmd(flags *Flags) *EmailCmd {
	return &EmailCmd{flags: flags}
}

// Register adds the email command to the application.
func (cmd *EmailCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "email",
		Usage:     "Generate a QR code for an email address",
		UsageText: "qrforge email <address> [options] --output <path>",
		ArgsUsage: "<address>",
		Description: `Encodes a mailto: intent. Scanning opens the mail app with the
recipient and any subject, body, cc, and bcc pre-filled.

Examples:
  qrforge email someone@example.com -o mail.png
  qrforge email someone@example.com -s "Hi there" -b "Scan worked" -o mail.png`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "subject",
				Aliases:     []string{"s"},
				Usage:       "email subject",
				Destination: &cmd.subject,
			},
			&cli.StringFlag{
				Name:        "body",
				Aliases:     []string{"b"},
				Usage:       "email body",
				Destination: &cmd.body,
			},
			&cli.StringFlag{
				Name:        "cc",
				Usage:       "CC recipients",
				Destination: &cmd.cc,
			},
			&cli.StringFlag{
				Name:        "bcc",
				Usage:       "BCC recipients",
				Destination: &cmd.bcc,
			},
		}, cmd.out.flags()...),
		Action: cmd.run,
	})

	return app
}

func (cmd *EmailCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("address argument is required")
	}

	address, err := validate.Email(c.Args().First())
	if err != nil {
		return err
	}

	intent := qr.Email{
		Address: address,
		Subject: cmd.subject,
		Body:    cmd.body,
		CC:      cmd.cc,
		BCC:     cmd.bcc,
	}

	snapshot := map[string]string{"email": address}
	if cmd.subject != "" {
		snapshot["subject"] = cmd.subject
	}

	return generate(ctx, c, cmd.flags, &cmd.out, intent, snapshot)
}
