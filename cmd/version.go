package cmd

import (
	"fmt"

	"github.com/avagut/authhub/internal/version"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of authhub",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("authhub %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}
