// Package root contains the root command for the application
package root

import (
	"fmt"

	"eladk/pension-match/internal/config"
	"eladk/pension-match/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// App is the dependency container, wired in PersistentPreRunE
	App *container.Container

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pension-match",
		Short: "A CLI tool to resolve pension and insurance products against the reference taxonomy.",
		Long: `pension-match resolves imported product records (agent CSV exports or
clearinghouse XML) against the reference product taxonomy. It normalizes
free-text company, category and track names, matches them fuzzily, and
enriches matched products with investment exposure data.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pension-match!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			App, err = container.NewContainer(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to wire dependencies: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if App == nil {
				return
			}
			if err := App.Close(); err != nil {
				Log.Warnf("Failed to close container: %v", err)
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
