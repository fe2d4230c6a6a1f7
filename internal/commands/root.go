package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studypulse",
	Short: "StudyPulse backend services",
	Long: `StudyPulse backend: the study-tracking API gateway, the session
insight service, and a demo-data seeder.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(seedCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
