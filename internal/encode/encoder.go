// Package encode renders QR payloads to image files. The symbol matrix
// comes from skip2/go-qrcode; this package owns output sizing, the quiet
// zone, and the PNG/SVG writers.
package encode

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/rs/zerolog"
	qrcode "github.com/skip2/go-qrcode"
)

// Params are the encoding knobs.
type Params struct {
	// ErrorCorrection is one of L, M, Q, H. Empty defaults to M.
	ErrorCorrection string
	// BoxSize is the rendered size of one module in pixels.
	BoxSize int
	// Border is the quiet zone width in modules.
	Border int
}

// Encoder renders payloads to image files.
type Encoder struct {
	log zerolog.Logger
}

// New creates an Encoder.
func New(log zerolog.Logger) *Encoder {
	return &Encoder{log: log}
}

// Encode writes the QR symbol for payload to the target and returns the
// written path. The symbol version is auto-sized to fit the payload at the
// requested error-correction level.
func (e *Encoder) Encode(payload string, target Target, p Params) (string, error) {
	modules, version, err := buildSymbol(payload, p.ErrorCorrection)
	if err != nil {
		return "", err
	}

	boxSize := p.BoxSize
	if boxSize < 1 {
		boxSize = 1
	}
	border := p.Border
	if border < 0 {
		border = 0
	}

	switch target.Format {
	case FormatSVG:
		err = writeSVG(target.Path, modules, boxSize, border)
	default:
		err = writePNG(target.Path, modules, boxSize, border)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", target.Format, err)
	}

	e.log.Debug().
		Str("path", target.Path).
		Str("format", string(target.Format)).
		Int("version", version).
		Int("modules", len(modules)).
		Int("payload_bytes", len(payload)).
		Msg("encoded QR symbol")

	return target.Path, nil
}

// Info describes a QR symbol without rendering it.
type Info struct {
	Version         int    `json:"version"`
	Modules         int    `json:"modules"`
	DataLength      int    `json:"data_length"`
	ErrorCorrection string `json:"error_correction"`
}

// Inspect reports the symbol version and module count the payload would
// produce at the given error-correction level.
func (e *Encoder) Inspect(payload string, errorCorrection string) (Info, error) {
	level, err := normalizeLevel(errorCorrection)
	if err != nil {
		return Info{}, err
	}

	modules, version, err := buildSymbol(payload, level)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Version:         version,
		Modules:         len(modules),
		DataLength:      len(payload),
		ErrorCorrection: level,
	}, nil
}

func buildSymbol(payload, errorCorrection string) ([][]bool, int, error) {
	level, err := normalizeLevel(errorCorrection)
	if err != nil {
		return nil, 0, err
	}

	code, err := qrcode.New(payload, recoveryLevel(level))
	if err != nil {
		return nil, 0, fmt.Errorf("build QR symbol: %w", err)
	}

	// The quiet zone is drawn by the writers so the configured border
	// width wins over the library's fixed one.
	code.DisableBorder = true

	return code.Bitmap(), code.VersionNumber, nil
}

// normalizeLevel uppercases an error-correction level and rejects values
// outside L, M, Q, H. Empty defaults to M.
func normalizeLevel(errorCorrection string) (string, error) {
	level := strings.ToUpper(errorCorrection)
	if level == "" {
		level = "M"
	}

	switch level {
	case "L", "M", "Q", "H":
		return level, nil
	}

	return "", fmt.Errorf("invalid error correction level %q: must be one of L, M, Q, H", errorCorrection)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func writePNG(path string, modules [][]bool, boxSize, border int) error {
	size := (len(modules) + 2*border) * boxSize

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{
		color.White,
		color.Black,
	})

	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			fillBox(img, (x+border)*boxSize, (y+border)*boxSize, boxSize)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func fillBox(img *image.Paletted, x0, y0, boxSize int) {
	for y := y0; y < y0+boxSize; y++ {
		for x := x0; x < x0+boxSize; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
}

func writeSVG(path string, modules [][]bool, boxSize, border int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	size := (len(modules) + 2*border) * boxSize

	canvas := svg.New(f)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")
	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			canvas.Rect((x+border)*boxSize, (y+border)*boxSize, boxSize, boxSize, "fill:#000000")
		}
	}
	canvas.End()

	return f.Close()
}
