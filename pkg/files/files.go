package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	OtdbDir      = ".otdb"
	FormsDir     = "forms"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the .otdb directory layout in the current
// directory and writes default settings if there are none yet.
func InitProjectStructure() error {
	dirs := []string{
		OtdbDir,
		filepath.Join(OtdbDir, FormsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(settingsPath()); os.IsNotExist(err) {
		if err := WriteSettings(nil); err != nil {
			return err
		}
	}

	for name, content := range exampleForms {
		path := filepath.Join(OtdbDir, FormsDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := WriteFile(path, content); err != nil {
			return err
		}
	}

	return nil
}

// ResolveFormPath finds a form file either as given or inside .otdb/forms.
func ResolveFormPath(name string) (string, error) {
	candidates := []string{
		name,
		filepath.Join(OtdbDir, FormsDir, name),
		filepath.Join(OtdbDir, FormsDir, name+".yaml"),
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("form %s not found", name)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
