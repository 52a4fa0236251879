package models

import "time"

// Settings represents the application configuration
type Settings struct {
	API    APISettings    `yaml:"api"`
	UI     UISettings     `yaml:"ui"`
	Output OutputSettings `yaml:"output"`
	Log    LogSettings    `yaml:"log"`
}

// APISettings controls how the otdb API is reached
type APISettings struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`
}

// UISettings controls UI preferences
type UISettings struct {
	DropdownRows int  `yaml:"dropdown_rows" validate:"min=1,max=50"`
	ShowHelp     bool `yaml:"show_help"`
}

// OutputSettings controls how submitted forms are printed
type OutputSettings struct {
	Format string `yaml:"format" validate:"oneof=text json yaml"`
}

// LogSettings controls the debug log
type LogSettings struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"` // relative to the .otdb directory
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL: "http://localhost:8000",
			Timeout: 10 * time.Second,
		},
		UI: UISettings{
			DropdownRows: 5,
			ShowHelp:     true,
		},
		Output: OutputSettings{
			Format: "yaml",
		},
		Log: LogSettings{
			Level: "info",
			File:  "otdb.log",
		},
	}
}
