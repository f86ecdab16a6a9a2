package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/qrforge/internal/core/history"
	"github.com/colonyops/qrforge/internal/core/styles"
)

type HistoryCmd struct {
	flags *Flags

	limit int
	yes   bool
}

// NewHistoryCmd creates a new history command.
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application.
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View or manage QR code generation history",
		UsageText: "qrforge history [--limit N]",
		Description: `Shows recent QR codes with the command used to generate them,
newest first. Password values are masked in the displayed commands;
the stored entries are not modified.

Examples:
  qrforge history
  qrforge history --limit 5
  qrforge history clear --yes`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"l"},
				Usage:       "limit number of entries shown (0 = all)",
				Destination: &cmd.limit,
			},
		},
		Action: cmd.runList,
		Commands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "Clear all history entries",
				UsageText: "qrforge history clear [--yes]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip the confirmation prompt",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runClear,
			},
		},
	})

	return app
}

func (cmd *HistoryCmd) runList(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.flags.History.List(ctx, cmd.limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	out := c.Root().Writer

	if len(entries) == 0 {
		fmt.Fprintln(out, "No history entries found.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("QR Code Generation History (%d entries):", len(entries))))
	fmt.Fprintln(out)

	for i, entry := range entries {
		fmt.Fprintf(out, "[%d] %s - %s\n", i+1, entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Type)
		fmt.Fprintln(out, styles.Muted.Render("    "+history.MaskCommand(entry.Command)))
		fmt.Fprintln(out)
	}

	return nil
}

func (cmd *HistoryCmd) runClear(ctx context.Context, c *cli.Command) error {
	if !cmd.yes {
		ok, err := confirm("Are you sure you want to clear all history?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.Root().Writer, "Aborted.")
			return nil
		}
	}

	count, err := cmd.flags.History.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.Success.Render(fmt.Sprintf("✓ Cleared %d history entries.", count)))
	return nil
}

// confirm asks for confirmation on the terminal. When stdin is not a
// terminal there is nobody to ask, so the caller must pass --yes.
func confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("stdin is not a terminal; pass --yes to confirm")
	}

	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
