package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/otdb/otdb-terminal/pkg/api"
	"github.com/otdb/otdb-terminal/pkg/files"
	"github.com/otdb/otdb-terminal/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.OtdbDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .otdb directory found. Run 'otdb init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		Warnf("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// OpenLogger creates the debug logger described by the settings. Logs go
// to a file so they never draw over the terminal UI; outside a project
// nothing is logged. The returned closer must be called when done.
func (c *CommandContext) OpenLogger() (*log.Logger, io.Closer, error) {
	settings := c.LoadSettingsWithDefault()

	path := files.LogPath(settings)
	if path == "" || c.ValidateProject() != nil {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", settings.Log.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "otdb",
	})
	return logger, f, nil
}

// Searcher returns the search backend: a static option file when
// offlinePath is set, the otdb API otherwise.
func (c *CommandContext) Searcher(offlinePath string, logger *log.Logger) (api.Searcher, error) {
	if offlinePath != "" {
		return api.LoadStaticSource(offlinePath)
	}

	settings := c.LoadSettingsWithDefault()
	return api.NewClient(settings.API.BaseURL, settings.API.Timeout, api.WithLogger(logger)), nil
}
