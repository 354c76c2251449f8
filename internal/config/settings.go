package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rgehrsitz/nettogo/internal/constants"
)

// Settings are process-level options read from the environment. Command-line
// flags override them.
type Settings struct {
	ConstantsFile string `env:"NETTO_CONSTANTS_FILE"`
	Format        string `env:"NETTO_FORMAT" envDefault:"console"`
	ListenAddr    string `env:"NETTO_LISTEN_ADDR" envDefault:":8080"`
	Debug         bool   `env:"NETTO_DEBUG"`
}

// LoadSettings parses Settings from the process environment
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

// LoadSettingsFrom parses Settings from the given variables instead of the process environment
func LoadSettingsFrom(vars map[string]string) (Settings, error) {
	return parseSettings(env.Options{Environment: vars})
}

// LoadSettingsWithFile reads variables from a dotenv file, lets the process
// environment override them and parses the result. A missing file is not an error.
func LoadSettingsWithFile(path string) (Settings, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadSettings()
		}
		return Settings{}, fmt.Errorf("read %s: %w", path, err)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return LoadSettingsFrom(vars)
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// ConstantsTable loads the constants file if one is configured, otherwise the built-in table
func (s Settings) ConstantsTable() (*constants.Table, error) {
	if s.ConstantsFile == "" {
		return constants.Default(), nil
	}
	return constants.LoadFromFile(s.ConstantsFile)
}
