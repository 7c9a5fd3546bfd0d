package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:          "mathdrill",
	Short:        "Arithmetic practice drills",
	Long:         "Mathdrill generates random arithmetic problems, checks your answers and keeps score.",
	SilenceUsage: true,
	RunE:         runPlay,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("difficulty", "", "Difficulty: easy, medium or hard (overrides MATHDRILL_DIFFICULTY)")
	rootCmd.PersistentFlags().String("operation", "", "Operation: addition, subtraction, multiplication or division (overrides MATHDRILL_OPERATION)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, then applies --difficulty and
// --operation when they were given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("difficulty"); v != "" {
		cfg.Difficulty = problemgen.ParseDifficulty(v)
	}
	if v, _ := cmd.Flags().GetString("operation"); v != "" {
		cfg.Operation = problemgen.ParseOperation(v)
	}
}
