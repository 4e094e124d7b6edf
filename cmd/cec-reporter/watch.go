package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cec-reporter/internal/config"
	"cec-reporter/internal/journal"
	"cec-reporter/internal/logging"
	"cec-reporter/internal/status"
)

var watchPrintOnly bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report journal events read from STDIN",
	Long:  "watch reads journal lines from STDIN until EOF or a signal, reporting each event as it arrives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		log := logging.FromContext(cmd.Context())
		p, err := newPipeline(cfg, watchPrintOnly, log)
		if err != nil {
			return err
		}
		defer p.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.StatusAddr != "" {
			srv := status.NewServer(p.reporter, p.registry)
			go func() {
				log.Info("status server listening", "addr", cfg.StatusAddr)
				if err := srv.Start(ctx, cfg.StatusAddr); err != nil {
					log.Error("status server failed", "err", err)
				}
			}()
		}

		// a blocked STDIN read does not observe ctx
		done := make(chan error, 1)
		go func() { done <- journal.ReadLog(ctx, os.Stdin, 0, p.handle) }()
		select {
		case err = <-done:
			if ctx.Err() != nil {
				err = nil
			}
		case <-ctx.Done():
			err = nil
		}
		log.Info("watch stopped")
		return err
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchPrintOnly, "print-only", false, "Print reports to STDOUT instead of submitting them")
}
