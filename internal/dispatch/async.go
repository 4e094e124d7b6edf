// Package dispatch sends built report requests to their form endpoints
// without blocking the caller.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"cec-reporter/internal/metrics"
	"cec-reporter/internal/report"
	"cec-reporter/internal/sink"
)

// DefaultTimeout bounds a single submission when no transport is supplied.
const DefaultTimeout = 15 * time.Second

// Transport performs one HTTP round trip. *http.Client satisfies it.
type Transport interface {
	Do(*http.Request) (*http.Response, error)
}

// Async is a fire-and-forget report.Submitter. Each Submit call runs as one
// background unit; failures are logged and counted, never retried and never
// returned.
type Async struct {
	transport Transport
	writer    sink.ReportWriter
	metrics   *metrics.Metrics
	log       *slog.Logger
	dryRun    bool
	now       func() time.Time

	wg      sync.WaitGroup
	writeMu sync.Mutex
}

// Option configures an Async dispatcher.
type Option func(*Async)

// WithTransport replaces the default HTTP client.
func WithTransport(t Transport) Option { return func(a *Async) { a.transport = t } }

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// together with WithTransport.
func WithTimeout(d time.Duration) Option {
	return func(a *Async) {
		if c, ok := a.transport.(*http.Client); ok && d > 0 {
			c.Timeout = d
		}
	}
}

// WithDryRun records submissions without sending them.
func WithDryRun(v bool) Option { return func(a *Async) { a.dryRun = v } }

// WithWriter records every attempt to w.
func WithWriter(w sink.ReportWriter) Option { return func(a *Async) { a.writer = w } }

// WithMetrics counts submission outcomes.
func WithMetrics(m *metrics.Metrics) Option { return func(a *Async) { a.metrics = m } }

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option { return func(a *Async) { a.log = l } }

// New creates an Async dispatcher.
func New(opts ...Option) *Async {
	a := &Async{
		transport: &http.Client{Timeout: DefaultTimeout},
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Submit starts one background unit sending every request concurrently. It
// returns immediately.
func (a *Async) Submit(reqs ...report.Request) {
	if len(reqs) == 0 {
		return
	}
	unit := append([]report.Request(nil), reqs...)
	a.wg.Add(1)
	go a.run(unit)
}

// Drain waits for in-flight units or for ctx to end.
func (a *Async) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Async) run(reqs []report.Request) {
	defer a.wg.Done()

	rows := make([]sink.ReportRow, len(reqs))
	var g errgroup.Group
	for i, req := range reqs {
		g.Go(func() error {
			row, err := a.send(req)
			rows[i] = row
			return err
		})
	}
	if err := g.Wait(); err != nil {
		a.log.Warn("report unit incomplete", "requests", len(reqs), "err", err)
	}
	a.record(rows)
}

// send performs one request and returns the row describing the attempt.
func (a *Async) send(req report.Request) (row sink.ReportRow, err error) {
	row = sink.ReportRow{
		ID:            req.ID,
		Category:      string(req.Category),
		Method:        req.Method,
		URL:           req.URL(),
		Commander:     req.Commander,
		System:        req.System,
		ClientVersion: req.ClientVersion,
		Fields:        make(map[string]string, len(req.Fields)),
		Timestamp:     a.now().UTC(),
	}
	for _, f := range req.Fields {
		row.Fields[f.Key] = f.Value
	}
	log := a.log.With("category", row.Category, "request_id", row.ID)

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
			row.Status = sink.StatusFailed
			row.Error = err.Error()
			log.Error("submission panicked", "panic", p)
			a.metrics.IncrementSubmission(row.Category, row.Status)
		}
	}()

	if a.dryRun {
		row.Status = sink.StatusDryRun
		log.Info("dry run", "method", row.Method, "url", row.URL)
		a.metrics.IncrementSubmission(row.Category, row.Status)
		return row, nil
	}

	start := time.Now()
	err = a.do(req.Method, row.URL, req.ClientVersion)
	a.metrics.ObserveSubmission(time.Since(start))
	if err != nil {
		row.Status = sink.StatusFailed
		row.Error = err.Error()
		log.Warn("submission failed", "err", err)
	} else {
		row.Status = sink.StatusSent
		log.Debug("submission sent", "duration", time.Since(start))
	}
	a.metrics.IncrementSubmission(row.Category, row.Status)
	return row, err
}

func (a *Async) do(method, url, clientVersion string) error {
	httpReq, err := http.NewRequestWithContext(context.Background(), method, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if clientVersion != "" {
		httpReq.Header.Set("User-Agent", clientVersion)
	}
	resp, err := a.transport.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: HTTP %d", method, resp.StatusCode)
	}
	return nil
}

// record writes the rows of one unit, in a single batch when the writer
// supports it.
func (a *Async) record(rows []sink.ReportRow) {
	if a.writer == nil || len(rows) == 0 {
		return
	}
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	defer func() {
		if p := recover(); p != nil {
			a.log.Error("report log writer panicked", "panic", p)
		}
	}()
	if bw, ok := a.writer.(sink.BatchReportWriter); ok {
		if err := bw.WriteReports(rows); err != nil {
			a.log.Error("report log write failed", "rows", len(rows), "err", err)
		}
		return
	}
	for _, row := range rows {
		if err := a.writer.WriteReport(row); err != nil {
			a.log.Error("report log write failed", "request_id", row.ID, "err", err)
		}
	}
}
