// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. BOOKLIBRARY_LIBRARY_FILE
const EnvPrefix = "BOOKLIBRARY"

// Config holds application configuration
type Config struct {
	LibraryFile string // file used by every command
	Format      string // "text" (default) or "yaml"
	Verbose     bool   // emit diagnostic log lines
	Quiet       bool   // suppress add/remove notices
	BackupDir   string // empty disables backups before save
	MaxBackups  int
	MetricsFile string // Prometheus textfile written at exit when set
}

var AppConfig Config

// SetDefaults registers default values with viper
func SetDefaults() {
	viper.SetDefault("library_file", "library.txt")
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("backup_dir", "")
	viper.SetDefault("max_backups", 5)
	viper.SetDefault("metrics_file", "")
}

// ConfigureEnv makes every key overridable through BOOKLIBRARY_* variables
func ConfigureEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	AppConfig = Config{
		LibraryFile: viper.GetString("library_file"),
		Format:      strings.ToLower(strings.TrimSpace(viper.GetString("format"))),
		Verbose:     viper.GetBool("verbose"),
		Quiet:       viper.GetBool("quiet"),
		BackupDir:   viper.GetString("backup_dir"),
		MaxBackups:  viper.GetInt("max_backups"),
		MetricsFile: viper.GetString("metrics_file"),
	}

	// Normalize
	if AppConfig.Format == "" || AppConfig.Format == "txt" {
		AppConfig.Format = "text"
	}
	if AppConfig.Format == "yml" {
		AppConfig.Format = "yaml"
	}
	if AppConfig.LibraryFile == "" {
		AppConfig.LibraryFile = "library.txt"
	}
	if AppConfig.MaxBackups < 0 {
		AppConfig.MaxBackups = 0
	}
}
