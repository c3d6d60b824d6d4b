package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmarchant/codabind/internal/config"
)

var configInitCmd = &cobra.Command{
	Use:   "config:init [path]",
	Short: "Write a default config file",
	Long: `Write the default configuration to the given path, or to
.codabind/config.yaml when no path is given. Fails if the file exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".codabind/config.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configInitCmd)
}
