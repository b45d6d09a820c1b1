package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns ~/.kinetic/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".kinetic", "config.yaml"), nil
}

// Load reads settings from path. Keys missing from the file keep their
// defaults, and a missing file yields Default().
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, kineticerrors.NewParseError(path, 0, err)
	}

	if err := Decode(path, data, &settings); err != nil {
		return Settings{}, err
	}

	if err := Validate(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Decode unmarshals data into settings, picking the format from the extension.
func Decode(path string, data []byte, settings *Settings) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), settings); err != nil {
			return kineticerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return kineticerrors.NewParseError(path, extractLine(err), err)
		}
	}
	return nil
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return extractLine(err)
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
