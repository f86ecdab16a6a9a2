package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
)

var validLevels = map[string]struct{}{
	"L": {}, "M": {}, "Q": {}, "H": {},
}

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if _, ok := validLevels[strings.ToUpper(c.Encoder.ErrorCorrection)]; !ok {
		errs = errs.Append("encoder.error_correction", fmt.Errorf("invalid level %q: must be one of L, M, Q, H", c.Encoder.ErrorCorrection))
	}
	if c.Encoder.BoxSize < 1 {
		errs = errs.Append("encoder.box_size", fmt.Errorf("must be at least 1, got %d", c.Encoder.BoxSize))
	}
	if c.Encoder.Border < 0 {
		errs = errs.Append("encoder.border", fmt.Errorf("must not be negative, got %d", c.Encoder.Border))
	}
	if c.History.MaxEntries < 0 {
		errs = errs.Append("history.max_entries", fmt.Errorf("must not be negative, got %d", c.History.MaxEntries))
	}

	return errs.ToError()
}

// ValidateDeep validates the configuration including file accessibility.
// The configPath argument specifies the config file location to check
// (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
