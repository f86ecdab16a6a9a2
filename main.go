package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/commands"
	"github.com/colonyops/qrforge/internal/core/config"
	"github.com/colonyops/qrforge/internal/core/styles"
	"github.com/colonyops/qrforge/internal/encode"
	"github.com/colonyops/qrforge/internal/store/jsonfile"
	"github.com/colonyops/qrforge/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "qrforge",
		Usage:     "Generate QR codes from the command line",
		UsageText: "qrforge [global options] command [command options]",
		Description: `Encodes URLs, text, WiFi credentials, contact cards, and email, SMS,
map, and dialer intents into QR code images.

Every generation command requires --output; the output format is
inferred from the file extension (.png or .svg) unless overridden
with --format. Past generations are recorded in a local history,
viewable with 'qrforge history'.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("QRFORGE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/qrforge.log)",
				Sources:     cli.EnvVars("QRFORGE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("QRFORGE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("QRFORGE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to
			// <datadir>/qrforge.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "qrforge.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			flags.Config = cfg
			flags.History = jsonfile.NewHistoryStore(
				filepath.Join(cfg.DataDir, "history.json"),
				cfg.History.MaxEntries,
			)
			flags.Encoder = encode.New(log.With().Str("component", "encoder").Logger())

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewURLCmd(flags).Register(app)
	app = commands.NewTextCmd(flags).Register(app)
	app = commands.NewWifiCmd(flags).Register(app)
	app = commands.NewVCardCmd(flags).Register(app)
	app = commands.NewEmailCmd(flags).Register(app)
	app = commands.NewSmsCmd(flags).Register(app)
	app = commands.NewGeoCmd(flags).Register(app)
	app = commands.NewTelCmd(flags).Register(app)
	app = commands.NewInfoCmd(flags).Register(app)
	app = commands.NewHistoryCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+runErr.Error()))
		exitCode = 1
	}

	os.Exit(exitCode)
}
