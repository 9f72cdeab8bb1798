package cmd

import (
	"github.com/spf13/cobra"

	"github.com/interviewqs/qbank/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize qbank configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the question bank paths and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
