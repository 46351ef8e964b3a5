package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in xstat's version
	VersionMajor = 0
	// VersionMinor is the minor number in xstat's version
	VersionMinor = 1
	// VersionPatch is the patch number in xstat's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of xstat",
		Long:  `All software has versions. This is xstat's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xstat v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
