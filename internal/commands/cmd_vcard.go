package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/validate"
)

type VCardCmd struct {
	flags *Flags
	out   outputOpts

	name         string
	phone        string
	email        string
	organization string
	title        string
	url          string
	address      string
	note         string
}

// NewVCardCmd creates a new vcard command.
func NewVCardCmd(flags *Flags) *VCardCmd {
	return &VCardCmd{flags: flags}
}

// Register adds the vcard command to the application.
func (cmd *VCardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "vcard",
		Usage:     "Generate a QR code for a contact card (vCard)",
		UsageText: "qrforge vcard --name <name> [options] --output <path>",
		Description: `Encodes contact information as a vCard 3.0 QR code that phones scan
to add a contact.

Only --name is required; every other field is optional and validated
individually when present.

Examples:
  qrforge vcard -n "John Smith" -o contact.png
  qrforge vcard -n "Jane Doe" --phone "+1 555 123 4567" -e jane@example.com --org "Acme Inc" -o jane.png`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "contact name",
				Required:    true,
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "phone",
				Usage:       "phone number",
				Destination: &cmd.phone,
			},
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "email address",
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "organization",
				Aliases:     []string{"org"},
				Usage:       "organization/company name",
				Destination: &cmd.organization,
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "job title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "url",
				Aliases:     []string{"u"},
				Usage:       "website URL",
				Destination: &cmd.url,
			},
			&cli.StringFlag{
				Name:        "address",
				Usage:       "postal address",
				Destination: &cmd.address,
			},
			&cli.StringFlag{
				Name:        "note",
				Usage:       "free-form note",
				Destination: &cmd.note,
			},
		}, cmd.out.flags()...),
		Action: cmd.run,
	})

	return app
}

func (cmd *VCardCmd) run(ctx context.Context, c *cli.Command) error {
	card, err := validate.VCard(qr.VCard{
		Name:         cmd.name,
		Phone:        cmd.phone,
		Email:        cmd.email,
		Organization: cmd.organization,
		Title:        cmd.title,
		URL:          cmd.url,
		Address:      cmd.address,
		Note:         cmd.note,
	})
	if err != nil {
		return err
	}

	snapshot := map[string]string{"name": card.Name}
	if card.Phone != "" {
		snapshot["phone"] = card.Phone
	}
	if card.Email != "" {
		snapshot["email"] = card.Email
	}

	return generate(ctx, c, cmd.flags, &cmd.out, card, snapshot)
}
