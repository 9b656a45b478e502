package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/errors"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// Config file formats accepted by [ReadConfig].
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ReadConfig decodes a warehouse configuration from r in the given format.
//
// The decoded config is returned as-is: units are not normalized and no
// geometry checks run. Callers pass the result to [warehouse.Validate] or
// straight into the pipeline, which validates internally.
//
// ReadConfig does not close r.
func ReadConfig(r io.Reader, format string) (warehouse.Config, error) {
	var cfg warehouse.Config
	switch strings.ToLower(format) {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return warehouse.Config{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
			return warehouse.Config{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return warehouse.Config{}, errors.New(errors.ErrCodeUnsupported,
			"unsupported config format %q (must be json or toml)", format)
	}
	return cfg, nil
}

// ImportConfig reads a configuration file at path, choosing the format by
// file extension (.json or .toml).
//
// The error wraps the underlying cause with the file path for context.
func ImportConfig(path string) (warehouse.Config, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return warehouse.Config{}, errors.New(errors.ErrCodeUnsupported,
			"cannot determine config format of %q (expected a .json or .toml file)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return warehouse.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err,
				"config file %s not found", path)
		}
		return warehouse.Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := ReadConfig(f, format)
	if err != nil {
		return warehouse.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
