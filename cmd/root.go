package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "circconv <file>",
	Short: "circconv - rewrite a legacy circuit description into the acirc format in place",
	Args:  cobra.ArbitraryArgs,
	// Prioritize subcommands
	TraverseChildren:  true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	// Format: circconv <file> => behaves like the convert subcommand
	Run: runConvertCommand,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file (default .circconv.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the conversion")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	addConvertFlags(rootCmd)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(initCmd)
}

// setupLogger logs to stderr. Only warnings and errors are shown unless
// verbose is set, so a successful run prints nothing.
func setupLogger(_ *cobra.Command, _ []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}
