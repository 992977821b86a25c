package config

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a configuration file, applies defaults and validates it.
// Files ending in .json or .jsonc are read as JSON with comments; anything
// else is YAML. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fkerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data as if it were read from path.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := decodeJSON(path, data, &cfg); err != nil {
			return nil, err
		}
	default:
		if err := decodeYAML(path, data, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeYAML(path string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stdErrors.Is(err, io.EOF) {
		return fkerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func decodeJSON(path string, data []byte, cfg *Config) error {
	// ToJSON blanks comments and trailing commas in place, so offsets
	// still point into the original text.
	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(clean))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fkerrors.NewParseError(path, jsonLine(clean, err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stdErrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stdErrors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
