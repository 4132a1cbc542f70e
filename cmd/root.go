// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/jdfalk/book-library/internal/config"
	"github.com/jdfalk/book-library/internal/fileops"
	"github.com/jdfalk/book-library/internal/library"
	"github.com/jdfalk/book-library/internal/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "book-library",
	Short: "Keep a small library of books in a flat file",
	Long: `Book Library keeps an ordered collection of books (title, author, year)
in a plain text or YAML file.

Run without a subcommand to play the demonstration sequence.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), config.AppConfig.LibraryFile)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if config.AppConfig.MetricsFile == "" {
			return nil
		}
		if err := metrics.WriteTextfile(config.AppConfig.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		log.Printf("[INFO] Metrics written to %s", config.AppConfig.MetricsFile)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.book-library.yaml)")
	rootCmd.PersistentFlags().String("file", "library.txt", "library file to read and write")
	rootCmd.PersistentFlags().String("format", "text", "library file format: text or yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "log diagnostic messages to stderr")
	rootCmd.PersistentFlags().Bool("quiet", false, "do not print add/remove notices")
	rootCmd.PersistentFlags().String("backup-dir", "", "copy the previous library file here before saving")
	rootCmd.PersistentFlags().Int("max-backups", 5, "number of backups kept per file (0 keeps all)")
	rootCmd.PersistentFlags().String("metrics-file", "", "write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)

	metrics.Register()
}

// bindFlags ties persistent flags to their viper keys. It runs on every
// initialization so a viper.Reset between executions does not drop the bindings.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag("library_file", flags.Lookup("file"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("quiet", flags.Lookup("quiet"))
	viper.BindPFlag("backup_dir", flags.Lookup("backup-dir"))
	viper.BindPFlag("max_backups", flags.Lookup("max-backups"))
	viper.BindPFlag("metrics_file", flags.Lookup("metrics-file"))
}

func initConfig() {
	config.LoadEnvFiles()
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".book-library")
	}

	config.ConfigureEnv()

	readErr := viper.ReadInConfig()

	config.InitConfig()
	configureLogging(config.AppConfig.Verbose)

	if readErr == nil {
		log.Printf("[INFO] Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Printf("[WARN] Could not read config file %s: %v", cfgFile, readErr)
	}
}

// configureLogging sends diagnostics to stderr when verbose and discards them otherwise
func configureLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// newLibrary builds the base library from the active configuration
func newLibrary() (*library.Library, error) {
	format, err := library.ParseFormat(config.AppConfig.Format)
	if err != nil {
		return nil, err
	}
	return library.New(
		library.WithFormat(format),
		library.WithBackups(fileops.BackupConfig{
			Dir:        config.AppConfig.BackupDir,
			MaxBackups: config.AppConfig.MaxBackups,
		}),
	), nil
}

// newCatalog layers metrics and, unless quiet, notices over a base library
func newCatalog(out io.Writer) (library.Catalog, error) {
	base, err := newLibrary()
	if err != nil {
		return nil, err
	}
	var catalog library.Catalog = library.NewInstrumented(base)
	if !config.AppConfig.Quiet {
		catalog = library.NewNotifying(catalog, library.WithNotices(out))
	}
	return catalog, nil
}

// loadExisting loads path into catalog. A missing file is an empty library.
func loadExisting(catalog library.Catalog, path string) error {
	err := library.WithFileManager(catalog, func(fm *library.FileManager) error {
		return fm.Load(path)
	})
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[INFO] %s does not exist yet, starting empty", path)
		return nil
	}
	return err
}

// saveCatalog writes catalog to path inside a file manager scope
func saveCatalog(catalog library.Catalog, path string) error {
	return library.WithFileManager(catalog, func(fm *library.FileManager) error {
		return fm.Save(path)
	})
}
