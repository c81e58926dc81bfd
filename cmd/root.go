package cmd

import (
	"fmt"
	"os"

	"github.com/avagut/authhub/cmd/flags"
	"github.com/avagut/authhub/internal/version"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "authhub",
	Short: "authhub",
	Long:  `authhub https://github.com/avagut/authhub`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&flags.Dev, "dev", version.Version == "dev", "start with dev mode")
	RootCmd.PersistentFlags().BoolVar(&flags.LogStd, "log-std", true, "log to std")
	RootCmd.PersistentFlags().BoolVar(&flags.EnvNoPrefix, "env-no-prefix", false, "env no AUTHHUB_ prefix")
	RootCmd.PersistentFlags().BoolVar(&flags.SkipConfig, "skip-config", false, "skip config")
	RootCmd.PersistentFlags().BoolVar(&flags.SkipEnv, "skip-env", false, "skip env")
	RootCmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", "./data", "data dir")
	RootCmd.PersistentFlags().BoolVar(&flags.DisableLogColor, "disable-log-color", false, "disable log color")
}
