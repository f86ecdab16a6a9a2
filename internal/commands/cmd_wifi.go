package commands

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/qrforge/internal/core/validate"
)

type WifiCmd struct {
	flags *Flags
	out   outputOpts

	ssid     string
	password string
	security string
	hidden   bool
}

// NewWifiCmd creates a new wifi command.
func NewWifiCmd(flags *Flags) *WifiCmd {
	return &WifiCmd{flags: flags}
}

// Register adds the wifi command to the application.
func (cmd *WifiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "wifi",
		Usage:     "Generate a QR code for WiFi credentials",
		UsageText: "qrforge wifi --ssid <name> --password <pass> --output <path>",
		Description: `Encodes WiFi credentials into a QR code that phones scan to join
the network.

The password is required unless --security is nopass. The password is
never stored in the generation history.

Examples:
  qrforge wifi -s HomeNet -p secret123 -o wifi.png
  qrforge wifi -s CafeGuest -t nopass -o guest.png
  qrforge wifi -s HiddenNet -p secret123 --hidden -o hidden.png`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "ssid",
				Aliases:     []string{"s"},
				Usage:       "WiFi network name (SSID)",
				Required:    true,
				Destination: &cmd.ssid,
			},
			&cli.StringFlag{
				Name:        "password",
				Aliases:     []string{"p"},
				Usage:       "WiFi password",
				Destination: &cmd.password,
			},
			&cli.StringFlag{
				Name:        "security",
				Aliases:     []string{"t"},
				Usage:       "security type (WPA, WPA2, WPA3, WEP, nopass)",
				Value:       "WPA",
				Destination: &cmd.security,
			},
			&cli.BoolFlag{
				Name:        "hidden",
				Usage:       "network is hidden",
				Destination: &cmd.hidden,
			},
		}, cmd.out.flags()...),
		Action: cmd.run,
	})

	return app
}

func (cmd *WifiCmd) run(ctx context.Context, c *cli.Command) error {
	wifi, err := validate.WiFi(cmd.ssid, cmd.password, cmd.security)
	if err != nil {
		return err
	}
	wifi.Hidden = cmd.hidden

	// The snapshot carries no password: history must never hold secrets
	// in plain form.
	snapshot := map[string]string{
		"ssid":     wifi.SSID,
		"security": wifi.Security,
		"hidden":   strconv.FormatBool(wifi.Hidden),
	}

	return generate(ctx, c, cmd.flags, &cmd.out, wifi, snapshot)
}
