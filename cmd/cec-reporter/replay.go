package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cec-reporter/internal/config"
	"cec-reporter/internal/journal"
	"cec-reporter/internal/logging"
)

var (
	replayInput     string
	replaySpeed     float64
	replayPrintOnly bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a journal file",
	Long:  "replay feeds the events of a journal file through the reporter, then waits for submissions to finish.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		log := logging.FromContext(cmd.Context())
		p, err := newPipeline(cfg, replayPrintOnly, log)
		if err != nil {
			return err
		}
		defer p.close()
		log.Info("replaying journal", "input", replayInput, "speed", replaySpeed, "dry_run", cfg.DryRun || replayPrintOnly)
		return journal.ReadLogFile(cmd.Context(), replayInput, replaySpeed, p.handle)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to journal file")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 0, "Playback speed multiplier (0 replays without pacing)")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print reports to STDOUT instead of submitting them")
	replayCmd.MarkFlagRequired("input")
}
