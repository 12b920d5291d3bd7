package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/circconv/convert"
	"github.com/gnoswap-labs/circconv/formatter"
)

var (
	dryRun      bool
	atomic      bool
	ignoreRules string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a circuit file in place",
	Args:  cobra.ArbitraryArgs,
	Run:   runConvertCommand,
}

func init() {
	addConvertFlags(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the rewrites without modifying the file")
	cmd.Flags().BoolVar(&atomic, "atomic", false, "Replace the file through a temporary file and rename")
	cmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
}

func printUsage(cmd *cobra.Command) {
	fmt.Printf("Usage: %s <file>\n", cmd.Root().Name())
}

func runConvertCommand(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		printUsage(cmd)
		os.Exit(1)
	}

	config, err := convert.LoadConfig(cfgFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	engine := convert.New(config, logger)
	if ignoreRules != "" {
		for _, rule := range strings.Split(ignoreRules, ",") {
			engine.IgnoreRule(strings.TrimSpace(rule))
		}
	}

	opts := convert.Options{
		DryRun: dryRun,
		Atomic: config.Atomic,
	}
	if cmd.Flags().Changed("atomic") {
		opts.Atomic = atomic
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runConvert(ctx, logger, engine, args[0], opts)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		// interrupted by the user: exit quietly
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Println("Conversion timed out")
		os.Exit(1)
	default:
		logger.Fatal("Failed to convert circuit", zap.String("path", args[0]), zap.Error(err))
	}
}

func runConvert(ctx context.Context, logger *zap.Logger, engine convert.ConvertEngine, path string, opts convert.Options) error {
	result, err := convert.ProcessFile(ctx, logger, engine, path, opts)
	if err != nil {
		return err
	}

	if opts.DryRun {
		fmt.Print(formatter.FormatRewrites(result))
		fmt.Print(string(result.Content))
	}
	return nil
}
