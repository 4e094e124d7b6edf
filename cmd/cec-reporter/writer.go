package main

import (
	"os"

	"cec-reporter/internal/config"
	"cec-reporter/internal/sink"
)

// newWriters sets up the report writers based on flags and configuration.
// It returns nil when no writer is configured, and a cleanup function to
// close any resources.
func newWriters(cfg *config.Config, printOnly bool) (sink.ReportWriter, func(), error) {
	cleanup := func() {}
	var ws []sink.ReportWriter

	if printOnly {
		ws = append(ws, sink.NewStdoutWriter(os.Stdout))
	} else if cfg.Greptime.Endpoint != "" {
		gw, err := sink.NewGreptimeDBWriter(cfg.Greptime.Endpoint, cfg.Greptime.Database, cfg.Greptime.Table)
		if err != nil {
			return nil, nil, err
		}
		ws = append(ws, gw)
	}

	if cfg.ReportLog != "" {
		fw, err := sink.NewFileWriter(cfg.ReportLog)
		if err != nil {
			return nil, nil, err
		}
		ws = append(ws, fw)
		cleanup = func() { fw.Close() }
	}

	switch len(ws) {
	case 0:
		return nil, cleanup, nil
	case 1:
		return ws[0], cleanup, nil
	}
	return sink.NewMultiWriter(ws...), cleanup, nil
}
