package report

import (
	"sync"

	"cec-reporter/internal/journal"
)

// statValue is one optional statistics value in comparable form.
type statValue struct {
	set     bool
	numeric bool
	text    string
}

func statOf(tg journal.Event, field string) statValue {
	v, ok := tg.Get(field)
	if !ok || v == nil {
		return statValue{}
	}
	if f, ok := journal.AsNumber(v); ok {
		return statValue{set: true, numeric: true, text: journal.FormatNumber(f)}
	}
	return statValue{set: true, text: journal.Format(v)}
}

// StatsSnapshot holds the last seen Thargoid encounter counters. Two
// snapshots are equal iff every sub-field is equal, absent included. The
// values are read through Values.
type StatsSnapshot struct {
	wakes         statValue
	imprint       statValue
	total         statValue
	lastTimestamp statValue
	scoutCount    statValue
	lastSystem    statValue
}

var initialStats = StatsSnapshot{
	wakes:         statValue{set: true, numeric: true, text: "0"},
	imprint:       statValue{set: true, numeric: true, text: "0"},
	total:         statValue{set: true, numeric: true, text: "0"},
	lastTimestamp: statValue{set: true, text: "x"},
	scoutCount:    statValue{set: true, numeric: true, text: "0"},
	lastSystem:    statValue{set: true, text: "x"},
}

func snapshotOf(tg journal.Event) StatsSnapshot {
	return StatsSnapshot{
		wakes:         statOf(tg, "TG_ENCOUNTER_WAKES"),
		imprint:       statOf(tg, "TG_ENCOUNTER_IMPRINT"),
		total:         statOf(tg, "TG_ENCOUNTER_TOTAL"),
		lastTimestamp: statOf(tg, "TG_ENCOUNTER_TOTAL_LAST_TIMESTAMP"),
		scoutCount:    statOf(tg, "TG_SCOUT_COUNT"),
		lastSystem:    statOf(tg, "TG_ENCOUNTER_TOTAL_LAST_SYSTEM"),
	}
}

// Values returns the present sub-fields keyed by journal name.
func (s StatsSnapshot) Values() map[string]string {
	out := make(map[string]string, len(tgFields))
	for _, kv := range []struct {
		name string
		v    statValue
	}{
		{"TG_ENCOUNTER_WAKES", s.wakes},
		{"TG_ENCOUNTER_IMPRINT", s.imprint},
		{"TG_ENCOUNTER_TOTAL", s.total},
		{"TG_ENCOUNTER_TOTAL_LAST_TIMESTAMP", s.lastTimestamp},
		{"TG_SCOUT_COUNT", s.scoutCount},
		{"TG_ENCOUNTER_TOTAL_LAST_SYSTEM", s.lastSystem},
	} {
		if kv.v.set {
			out[kv.name] = kv.v.text
		}
	}
	return out
}

// StatsTracker stores the last reported snapshot.
type StatsTracker struct {
	mu   sync.Mutex
	last StatsSnapshot
}

// NewStatsTracker returns a tracker primed with the zero counters.
func NewStatsTracker() *StatsTracker {
	return &StatsTracker{last: initialStats}
}

// Swap stores s and reports whether it differs from the previous snapshot.
// An unchanged snapshot leaves the tracker untouched.
func (t *StatsTracker) Swap(s StatsSnapshot) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s == t.last {
		return false
	}
	t.last = s
	return true
}

// Last returns the stored snapshot.
func (t *StatsTracker) Last() StatsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
