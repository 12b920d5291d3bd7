package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/circconv/convert"
)

// initCmd: circconv init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new converter configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = convert.DefaultConfigurationPath
	}
	if err := convert.WriteConfig(configurationPath, convert.DefaultConfig()); err != nil {
		return "", err
	}
	return configurationPath, nil
}
