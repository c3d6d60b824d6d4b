package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rmarchant/codabind/internal/application/catalog"
	"github.com/rmarchant/codabind/internal/config"
	"github.com/rmarchant/codabind/internal/tracing"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config

	logger         *zap.Logger
	traceProvider  *tracing.Provider
	catalogService *catalog.Service
)

var rootCmd = &cobra.Command{
	Use:     "codabind",
	Short:   "Expose erasure-coding stacks under human-readable names",
	Long: `codabind registers erasure-coding stacks (factory plus encoder/decoder
pairs) in a name-to-type registry, one pair per field variant, and lets you
inspect the registry and drive registered stacks from the command line.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		traceProvider, err = tracing.NewProvider(cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}

		catalogService, err = catalog.NewService(logger)
		if err != nil {
			return fmt.Errorf("init catalog: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if traceProvider != nil {
			if err := traceProvider.Shutdown(cmd.Context()); err != nil {
				return fmt.Errorf("shutdown tracing: %w", err)
			}
		}
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/codabind/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("coding.symbols", defaults.Coding.Symbols)
	viper.SetDefault("coding.symbol_size", defaults.Coding.SymbolSize)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .codabind/config.yaml (current directory)
		// 2. ~/.config/codabind/config.yaml (user config)
		if _, err := os.Stat(".codabind/config.yaml"); err == nil {
			viper.SetConfigFile(".codabind/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "codabind"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; run on defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing config: %v\n", err)
		cfg = config.Defaults()
	}
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
