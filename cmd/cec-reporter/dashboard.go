package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cec-reporter/internal/config"
	"cec-reporter/internal/dashboard"
	"cec-reporter/internal/logging"
)

var dashboardOut string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the Grafana dashboard for the report table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		path, err := dashboard.Render(dashboardOut, dashboard.Options{
			Database: cfg.Greptime.Database,
			Table:    cfg.Greptime.Table,
		})
		if err != nil {
			return err
		}
		logging.FromContext(cmd.Context()).Info("dashboard written", "path", path)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOut, "out", "build", "Output directory")
}
