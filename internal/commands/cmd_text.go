package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/validate"
)

// snapshotTextLimit caps free-text values stored in history snapshots.
const snapshotTextLimit = 100

type TextCmd struct {
	flags *Flags
	out   outputOpts
}

// NewTextCmd creates a new text command.
func NewTextCmd(flags *Flags) *TextCmd {
	return &TextCmd{flags: flags}
}

// Register adds the text command to the application.
func (cmd *TextCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "text",
		Usage:     "Generate a QR code for plain text",
		UsageText: "qrforge text <text> --output <path>",
		ArgsUsage: "<text>",
		Description: `Encodes free-form text into a QR code image.

Text is limited to 4000 characters; longer payloads scan unreliably.

Examples:
  qrforge text "hello world" -o hello.png`,
		Flags:  cmd.out.flags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *TextCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("text argument is required")
	}

	text, err := validate.Text(c.Args().First())
	if err != nil {
		return err
	}

	snapshot := map[string]string{"text": truncateSnapshot(text, snapshotTextLimit)}

	return generate(ctx, c, cmd.flags, &cmd.out, qr.Text{Value: text}, snapshot)
}
