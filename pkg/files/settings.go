package files

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/otdb/otdb-terminal/pkg/models"
)

// EnvFile holds per-project environment overrides, next to the settings.
const EnvFile = ".env"

// Environment variables that override settings.yaml.
const (
	EnvAPIURL     = "OTDB_API_URL"
	EnvAPITimeout = "OTDB_API_TIMEOUT"
	EnvLogLevel   = "OTDB_LOG_LEVEL"
)

func settingsPath() string {
	return filepath.Join(OtdbDir, SettingsFile)
}

// ReadSettings loads .otdb/settings.yaml. A missing file yields the
// defaults; keys missing from the file keep their default values.
// Variables from .otdb/.env and then the process environment override
// the file, and the result is validated.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(settingsPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	env, err := readEnv()
	if err != nil {
		return nil, err
	}
	if err := applyEnv(settings, env); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// readEnv merges .otdb/.env with the process environment, the latter
// winning.
func readEnv() (map[string]string, error) {
	env := map[string]string{}

	path := filepath.Join(OtdbDir, EnvFile)
	if _, err := os.Stat(path); err == nil {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		env = values
	}

	for _, key := range []string{EnvAPIURL, EnvAPITimeout, EnvLogLevel} {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}
	return env, nil
}

func applyEnv(settings *models.Settings, env map[string]string) error {
	if v := env[EnvAPIURL]; v != "" {
		settings.API.BaseURL = v
	}
	if v := env[EnvAPITimeout]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAPITimeout, err)
		}
		settings.API.Timeout = d
	}
	if v := env[EnvLogLevel]; v != "" {
		settings.Log.Level = v
	}
	return nil
}

// WriteSettings saves settings, or the defaults when settings is nil.
func WriteSettings(settings *models.Settings) error {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return WriteFile(settingsPath(), string(data))
}

// LogPath returns where the debug log is written, "" when disabled.
func LogPath(settings *models.Settings) string {
	if settings.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(settings.Log.File) {
		return settings.Log.File
	}
	return filepath.Join(OtdbDir, settings.Log.File)
}
