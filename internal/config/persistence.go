// file: internal/config/persistence.go
// version: 2.0.0
// guid: 98c6ec71-39d6-4ee1-acd0-a652a90e1fe6

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadEnvFiles reads .env and .env.local from the working directory. Values
// already present in the environment are never overridden.
func LoadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			log.Printf("[WARN] Failed to load %s: %v", name, err)
		}
	}
}

// SaveConfigToFile writes the effective settings to path as YAML, in the same
// shape viper reads back through --config.
func SaveConfigToFile(path string) error {
	if path == "" {
		return fmt.Errorf("config file path is empty")
	}

	fileConfig := map[string]any{
		"library_file": AppConfig.LibraryFile,
		"format":       AppConfig.Format,
		"verbose":      AppConfig.Verbose,
		"quiet":        AppConfig.Quiet,
		"backup_dir":   AppConfig.BackupDir,
		"max_backups":  AppConfig.MaxBackups,
		"metrics_file": AppConfig.MetricsFile,
	}

	data, err := yaml.Marshal(fileConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("[INFO] Configuration saved to file: %s", path)
	return nil
}
