package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xstat",
		Short: "xstat is a tool to grow classification trees and forests",
		Long:  `A tool to grow classification trees and random forests from your data, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log training progress to STDERR")
	rootCmd.AddCommand(versionCmd(), treeCmd(config), forestCmd(config))
	return rootCmd
}
