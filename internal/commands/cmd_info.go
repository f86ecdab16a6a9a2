package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/validate"
)

type InfoCmd struct {
	flags *Flags

	errorCorrection string
	jsonOutput      bool
}

// NewInfoCmd creates a new info command.
func NewInfoCmd(flags *Flags) *InfoCmd {
	return &InfoCmd{flags: flags}
}

// Register adds the info command to the application.
func (cmd *InfoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "info",
		Usage:     "Inspect the QR symbol a payload would produce",
		UsageText: "qrforge info <text> [--error-correction <level>]",
		ArgsUsage: "<text>",
		Description: `Reports the symbol version, module count, and data length for a
payload without writing an image.

Examples:
  qrforge info "https://example.com"
  qrforge info "some long text" --error-correction H --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "error-correction",
				Usage:       "error correction level (L, M, Q, H)",
				Destination: &cmd.errorCorrection,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InfoCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("text argument is required")
	}

	payload, err := validate.Text(c.Args().First())
	if err != nil {
		return err
	}

	level := cmd.errorCorrection
	if level == "" {
		level = cmd.flags.Config.Encoder.ErrorCorrection
	}

	info, err := cmd.flags.Encoder.Inspect(payload, level)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Version:          %d\n", info.Version)
	fmt.Fprintf(out, "Modules:          %dx%d\n", info.Modules, info.Modules)
	fmt.Fprintf(out, "Data length:      %d\n", info.DataLength)
	fmt.Fprintf(out, "Error correction: %s\n", info.ErrorCorrection)
	return nil
}
