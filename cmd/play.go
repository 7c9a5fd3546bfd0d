package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/logger"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session in the terminal",
	RunE:  runPlay,
}

// runPlay loads configuration and launches the TUI.
func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so logs only go to a file.
	log, closer, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	return app.Run(app.Options{
		Settings:     cfg.Settings(),
		AdvanceDelay: cfg.AdvanceDelay,
		Logger:       &log,
	})
}
