package encode

import (
	"path/filepath"
	"strings"
)

// Format is an output image format.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Target is a resolved output destination: an absolute path whose
// extension matches the format.
type Target struct {
	Path   string
	Format Format
}

// ResolveTarget derives the format from the path extension unless override
// is set, and coerces the path extension to match the resolved format. The
// saved file's extension therefore always agrees with its contents, even
// when the caller supplied a mismatched one.
func ResolveTarget(path, override string) Target {
	format := Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if override != "" {
		format = Format(strings.ToLower(override))
	}

	want := "." + string(format)
	if ext := filepath.Ext(path); !strings.EqualFold(ext, want) {
		path = strings.TrimSuffix(path, ext) + want
	}

	return Target{Path: path, Format: format}
}
