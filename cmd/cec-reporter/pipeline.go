package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"cec-reporter/internal/config"
	"cec-reporter/internal/dispatch"
	"cec-reporter/internal/journal"
	"cec-reporter/internal/metrics"
	"cec-reporter/internal/report"
	"cec-reporter/internal/session"
)

// pipeline wires journal events through the session tracker and reporter to
// the dispatcher.
type pipeline struct {
	tracker    *session.Tracker
	reporter   *report.Reporter
	dispatcher *dispatch.Async
	registry   *prometheus.Registry
	cfg        *config.Config
	cleanup    func()
	log        *slog.Logger

	mu     sync.Mutex
	closed bool
}

// newPipeline builds a pipeline. Print-only mode never submits: rows are
// printed as dry runs instead.
func newPipeline(cfg *config.Config, printOnly bool, log *slog.Logger) (*pipeline, error) {
	w, cleanup, err := newWriters(cfg, printOnly)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	d := dispatch.New(
		dispatch.WithTimeout(cfg.Timeout),
		dispatch.WithDryRun(cfg.DryRun || printOnly),
		dispatch.WithWriter(w),
		dispatch.WithMetrics(m),
		dispatch.WithLogger(log),
	)
	r := report.NewReporter(d, report.WithMetrics(m), report.WithLogger(log))
	return &pipeline{
		tracker:    session.NewTracker(cfg.Commander, cfg.Beta, cfg.ClientVersion),
		reporter:   r,
		dispatcher: d,
		registry:   reg,
		cfg:        cfg,
		cleanup:    cleanup,
		log:        log,
	}, nil
}

// handle feeds one event. Events arriving after close are dropped.
func (p *pipeline) handle(ev journal.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	session.Feed(p.tracker, p.reporter, ev)
	return nil
}

// close waits for in-flight submissions, bounded by slightly more than one
// request timeout, then releases the writers.
func (p *pipeline) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.Timeout+5*time.Second)
	defer cancel()
	if err := p.dispatcher.Drain(ctx); err != nil {
		p.log.Warn("submissions still in flight at exit", "err", err)
	}
	p.cleanup()
}
