package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cec-reporter/internal/config"
	"cec-reporter/internal/journal"
	"cec-reporter/internal/sink"
)

const sampleJournal = `{"timestamp":"2024-01-01T00:00:00Z","event":"LoadGame","Commander":"Jameson"}
{"timestamp":"2024-01-01T00:00:01Z","event":"FSDJump","StarSystem":"Sol","StarPos":[0,0,0]}
not json
{"timestamp":"2024-01-01T00:00:02Z","event":"USSDrop","USSType":"$USS_Type_NonHuman;","USSThreat":4}
{"timestamp":"2024-01-01T00:00:03Z","event":"USSDrop","USSType":"$USS_Type_NonHuman;","USSThreat":4}
`

func TestPipelineReplayDryRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Journal.log")
	if err := os.WriteFile(input, []byte(sampleJournal), 0o644); err != nil {
		t.Fatalf("write journal: %v", err)
	}
	cfg := config.Default()
	cfg.DryRun = true
	cfg.ReportLog = filepath.Join(dir, "reports.jsonl")

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := newPipeline(cfg, false, log)
	if err != nil {
		t.Fatalf("newPipeline: %v", err)
	}
	if err := journal.ReadLogFile(context.Background(), input, 0, p.handle); err != nil {
		t.Fatalf("replay: %v", err)
	}
	p.close()
	p.close()

	f, err := os.Open(cfg.ReportLog)
	if err != nil {
		t.Fatalf("open report log: %v", err)
	}
	defer f.Close()
	var rows []sink.ReportRow
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r sink.ReportRow
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("decode: %v", err)
		}
		rows = append(rows, r)
	}
	if len(rows) != 2 {
		t.Fatalf("expected detail and summary rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Status != sink.StatusDryRun || r.Commander != "Jameson" || r.System != "Sol" {
			t.Fatalf("unexpected row %+v", r)
		}
		if !strings.HasPrefix(r.Category, "nhss") {
			t.Fatalf("unexpected category %q", r.Category)
		}
	}
	if !p.reporter.Dedup().HasReported("Sol", "4") {
		t.Fatalf("expected Sol/4 to be marked")
	}
}
