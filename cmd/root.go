package cmd

import (
	"github.com/abhisek/quizmaster/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizmaster",
	Short: "Multiple-choice quiz in your terminal",
	Long:  "Quiz Master runs a multiple-choice quiz with instant feedback and a shareable score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides QUIZMASTER_CONFIG env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a YAML or JSON question bank (overrides QUIZMASTER_BANK env var)")
	rootCmd.PersistentFlags().String("delay", "", "Feedback delay, e.g. 1500ms (overrides QUIZMASTER_DELAY env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file (overrides QUIZMASTER_LOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig merges flags, environment variables and the config file.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var o config.Overrides
	o.ConfigPath, _ = cmd.Flags().GetString("config")
	o.BankPath, _ = cmd.Flags().GetString("bank")
	o.FeedbackDelay, _ = cmd.Flags().GetString("delay")
	o.LogFile, _ = cmd.Flags().GetString("log-file")
	return config.Resolve(o)
}
