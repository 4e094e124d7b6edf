package main

import (
	"path/filepath"
	"testing"

	"cec-reporter/internal/config"
	"cec-reporter/internal/sink"
)

func TestNewWritersPrintOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Greptime.Endpoint = "db.invalid:4001"
	w, cleanup, err := newWriters(cfg, true)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*sink.JSONStdoutWriter); !ok {
		t.Fatalf("expected *sink.JSONStdoutWriter, got %T", w)
	}
}

func TestNewWritersNone(t *testing.T) {
	w, cleanup, err := newWriters(config.Default(), false)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	cleanup()
	if w != nil {
		t.Fatalf("expected no writer, got %T", w)
	}
}

func TestNewWritersReportLog(t *testing.T) {
	cfg := config.Default()
	cfg.ReportLog = filepath.Join(t.TempDir(), "reports.jsonl")
	w, cleanup, err := newWriters(cfg, false)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	defer cleanup()
	if _, ok := w.(*sink.FileWriter); !ok {
		t.Fatalf("expected *sink.FileWriter, got %T", w)
	}
}

func TestNewWritersPrintOnlyWithLog(t *testing.T) {
	cfg := config.Default()
	cfg.ReportLog = filepath.Join(t.TempDir(), "reports.jsonl")
	w, cleanup, err := newWriters(cfg, true)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	defer cleanup()
	mw, ok := w.(*sink.MultiWriter)
	if !ok {
		t.Fatalf("expected *sink.MultiWriter, got %T", w)
	}
	if mw.Len() != 2 {
		t.Fatalf("expected 2 writers, got %d", mw.Len())
	}
}
