package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wisskirchenj/account-reactive/internal/pkg/version"
)

// InitVersionCommands registers the version command
func InitVersionCommands(rootCmd *cobra.Command) {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version and container image of the service",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s)\nimage: %s\n",
				version.Name, version.Version, version.Commit, version.ImageName())
		},
	}
	rootCmd.AddCommand(versionCmd)
}
