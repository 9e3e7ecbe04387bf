package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RelativePath locates the config file under the XDG config directories.
const RelativePath = "chessrules/config.json"

// DefaultPath returns where the config file is, or would be created, in the
// user's XDG config home.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(RelativePath)
}

// Load reads the first config file found in the XDG config directories into
// cfg. A missing file is not an error.
func Load(cfg *Config) error {
	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		return nil
	}
	return LoadFile(path, cfg)
}

// LoadFile reads a JSON config file into cfg. Fields absent from the file
// keep their current values. A file that does not decode fails with
// ErrParseFailure; decoded values that break Validate with ErrInvalidConfig.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return &errors.ParseError{
			Err:      errors.ErrParseFailure,
			File:     path,
			Expected: "JSON config",
			Got:      err.Error(),
		}
	}
	return cfg.Validate()
}

// Save writes the file-backed settings as indented JSON.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
