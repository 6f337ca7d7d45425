package cmd

import (
	"github.com/haystacksec/kustodian/internal/message"
	"github.com/haystacksec/kustodian/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Kustodian",
	Long:  `All software has versions. This is Kustodian's`,
	Run: func(cmd *cobra.Command, args []string) {
		message.Info("%s", version.FullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
