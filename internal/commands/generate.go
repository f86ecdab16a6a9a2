package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/config"
	"github.com/colonyops/qrforge/internal/core/history"
	"github.com/colonyops/qrforge/internal/core/qr"
	"github.com/colonyops/qrforge/internal/core/styles"
	"github.com/colonyops/qrforge/internal/core/validate"
	"github.com/colonyops/qrforge/internal/encode"
)

// outputOpts are the flags shared by every generation command.
type outputOpts struct {
	output          string
	format          string
	errorCorrection string
	boxSize         int
	border          int
}

func (o *outputOpts) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output file path (.png or .svg)",
			Required:    true,
			Destination: &o.output,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "override output format (png or svg)",
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "error-correction",
			Usage:       "error correction level (L, M, Q, H)",
			Destination: &o.errorCorrection,
		},
		&cli.IntFlag{
			Name:        "box-size",
			Usage:       "size of one module in pixels",
			Destination: &o.boxSize,
		},
		&cli.IntFlag{
			Name:        "border",
			Usage:       "quiet zone width in modules",
			Destination: &o.border,
		},
	}
}

// params merges per-command flag overrides over the config defaults.
func (o *outputOpts) params(c *cli.Command, defaults config.EncoderConfig) encode.Params {
	p := encode.Params{
		ErrorCorrection: defaults.ErrorCorrection,
		BoxSize:         defaults.BoxSize,
		Border:          defaults.Border,
	}

	if o.errorCorrection != "" {
		p.ErrorCorrection = strings.ToUpper(o.errorCorrection)
	}
	if c.IsSet("box-size") {
		p.BoxSize = o.boxSize
	}
	if c.IsSet("border") {
		p.Border = o.border
	}

	return p
}

// generate runs the shared pipeline for a validated content value:
// resolve the target, encode, record history, report. History recording
// failures are logged but never fail a generation that already wrote the
// image.
func generate(ctx context.Context, c *cli.Command, flags *Flags, o *outputOpts, content qr.Content, snapshot map[string]string) error {
	outPath, err := validate.OutputPath(o.output)
	if err != nil {
		return err
	}

	format, err := validate.OutputFormat(o.format)
	if err != nil {
		return err
	}

	target := encode.ResolveTarget(outPath, format)

	written, err := flags.Encoder.Encode(content.Payload(), target, o.params(c, flags.Config.Encoder))
	if err != nil {
		return err
	}

	if !flags.Config.History.Disabled {
		entry := history.NewEntry(content.Type(), buildCommand(), written, snapshot)
		if err := flags.History.Append(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("failed to record history entry")
		}
	}

	fmt.Fprintln(c.Root().Writer, styles.Success.Render("✓ QR code saved to: "+written))
	return nil
}

// buildCommand reconstructs the invocation line for the history record.
// Arguments containing whitespace are quoted so the line reads back as a
// runnable command.
func buildCommand() string {
	parts := make([]string, 0, len(os.Args))
	parts = append(parts, "qrforge")

	for _, arg := range os.Args[1:] {
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}

// truncateSnapshot shortens long free-text values for the history data
// snapshot.
func truncateSnapshot(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
