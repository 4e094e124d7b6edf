package report

import (
	"log/slog"

	"cec-reporter/internal/journal"
	"cec-reporter/internal/metrics"
)

// Reporter classifies events and hands reportable ones to a Submitter.
// Entry points return as soon as the request is built; they never fail
// and never panic into the caller.
type Reporter struct {
	submitter Submitter
	dedup     *DedupStore
	stats     *StatsTracker
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithDedupStore shares an existing dedup store.
func WithDedupStore(s *DedupStore) Option { return func(r *Reporter) { r.dedup = s } }

// WithStatsTracker shares an existing statistics tracker.
func WithStatsTracker(t *StatsTracker) Option { return func(r *Reporter) { r.stats = t } }

// WithMetrics records build and suppression counters.
func WithMetrics(m *metrics.Metrics) Option { return func(r *Reporter) { r.metrics = m } }

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option { return func(r *Reporter) { r.log = l } }

// NewReporter creates a Reporter submitting through sub.
func NewReporter(sub Submitter, opts ...Option) *Reporter {
	r := &Reporter{submitter: sub}
	for _, o := range opts {
		o(r)
	}
	if r.dedup == nil {
		r.dedup = NewDedupStore()
	}
	if r.stats == nil {
		r.stats = NewStatsTracker()
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Dedup returns the store used for non-human signal reports.
func (r *Reporter) Dedup() *DedupStore { return r.dedup }

// Stats returns the statistics tracker.
func (r *Reporter) Stats() *StatsTracker { return r.stats }

// Process offers ev to every category.
func (r *Reporter) Process(rc Context, s Surface, ev journal.Event) {
	r.FactionKill(rc, ev)
	r.CodexEntry(rc, ev, s)
	r.AXZone(rc, ev)
	r.Statistics(rc, ev)
	r.NonHumanSignal(rc, ev)
	r.ShipScan(rc, ev)
	r.Activity(rc, ev)
}

// FactionKill reports bonds for Thargoid and Guardian victims.
func (r *Reporter) FactionKill(rc Context, ev journal.Event) {
	defer r.recoverPanic(CategoryFactionKill)
	v, ok := parseFactionKill(ev)
	if !ok {
		return
	}
	r.submit(buildFactionKill(rc, v))
}

// CodexEntry reports codex discoveries with the surface position, if any.
func (r *Reporter) CodexEntry(rc Context, ev journal.Event, s Surface) {
	defer r.recoverPanic(CategoryCodex)
	v, ok := parseCodex(ev)
	if !ok {
		return
	}
	r.submit(buildCodex(rc, s, v))
}

// AXZone reports discovered AX conflict zones.
func (r *Reporter) AXZone(rc Context, ev journal.Event) {
	defer r.recoverPanic(CategoryAXZone)
	v, ok := parseAXZone(ev)
	if !ok {
		return
	}
	r.submit(buildAXZone(rc, v))
}

// Statistics reports Thargoid encounter counters when they changed since
// the last report.
func (r *Reporter) Statistics(rc Context, ev journal.Event) {
	defer r.recoverPanic(CategoryStatistics)
	v, ok := parseStatistics(ev)
	if !ok {
		return
	}
	if !r.stats.Swap(v.snapshot) {
		r.metrics.IncrementSuppressed(string(CategoryStatistics), "unchanged")
		r.log.Debug("statistics unchanged", "commander", rc.Commander)
		return
	}
	r.submit(buildStatistics(rc, v))
}

// NonHumanSignal reports the first sighting of each threat level per
// system to both signal forms.
func (r *Reporter) NonHumanSignal(rc Context, ev journal.Event) {
	defer r.recoverPanic(CategoryNHSS)
	v, ok := parseNHSS(ev, rc)
	if !ok {
		return
	}
	if !r.dedup.CheckAndMark(rc.System, v.threat) {
		r.metrics.IncrementSuppressed(string(CategoryNHSS), "duplicate")
		r.log.Debug("threat level already recorded", "system", rc.System, "threat", v.threat)
		return
	}
	r.log.Debug("non-human signal", "system", rc.System, "threat", v.threat, "source", v.source)
	r.submit(buildNHSS(rc, v)...)
}

// ShipScan reports fully scanned, target-locked ships.
func (r *Reporter) ShipScan(rc Context, ev journal.Event) {
	defer r.recoverPanic(CategoryShipScan)
	v, ok := parseShipScan(ev)
	if !ok {
		return
	}
	r.submit(buildShipScan(rc, v))
}

// Activity reports missions, exploration data sales and voucher redemptions.
func (r *Reporter) Activity(rc Context, ev journal.Event) {
	defer r.recoverPanic(CategoryActivity)
	v, ok := parseActivity(ev)
	if !ok {
		return
	}
	r.submit(buildActivity(rc, v))
}

func (r *Reporter) submit(reqs ...Request) {
	for _, req := range reqs {
		r.metrics.IncrementBuilt(string(req.Category))
		r.log.Debug("report built", "category", req.Category, "request_id", req.ID)
	}
	if r.submitter == nil {
		return
	}
	r.submitter.Submit(reqs...)
}

func (r *Reporter) recoverPanic(cat Category) {
	if p := recover(); p != nil {
		r.log.Error("report handler panicked", "category", cat, "panic", p)
	}
}
