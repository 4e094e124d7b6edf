// Session state derived from the journal: who is playing, and where
package session

import (
	"strings"
	"sync"

	"cec-reporter/internal/geometry"
	"cec-reporter/internal/journal"
	"cec-reporter/internal/report"
)

// Tracker follows location and identity events so that each record can be
// reported with the context the game client would have supplied.
type Tracker struct {
	mu            sync.Mutex
	commander     string
	beta          bool
	system        string
	station       string
	coords        *geometry.Point
	body          string
	lat, lon      *float64
	clientVersion string
}

// NewTracker returns a tracker with defaults used until the journal
// provides its own values.
func NewTracker(commander string, beta bool, clientVersion string) *Tracker {
	return &Tracker{commander: commander, beta: beta, clientVersion: clientVersion}
}

// Apply updates the session from ev. Events that carry no session state are
// ignored.
func (t *Tracker) Apply(ev journal.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch ev.Name() {
	case "Fileheader":
		if v, ok := ev.String("gameversion"); ok {
			t.beta = strings.Contains(strings.ToLower(v), "beta")
		}
	case "LoadGame":
		if v, ok := ev.String("Commander"); ok {
			t.commander = v
		}
	case "Commander":
		if v, ok := ev.String("Name"); ok {
			t.commander = v
		}
	case "Location", "FSDJump", "CarrierJump":
		t.setSystem(ev)
		if docked, _ := ev.Bool("Docked"); docked {
			t.station, _ = ev.String("StationName")
		} else {
			t.station = ""
		}
		if ev.Name() == "FSDJump" {
			t.clearSurface()
		}
	case "Docked":
		t.station, _ = ev.String("StationName")
	case "Undocked":
		t.station = ""
	case "ApproachBody":
		t.body, _ = ev.String("Body")
	case "Touchdown":
		if v, ok := ev.String("Body"); ok {
			t.body = v
		}
		t.lat = floatPtr(ev, "Latitude")
		t.lon = floatPtr(ev, "Longitude")
	case "Liftoff":
		t.lat, t.lon = nil, nil
	case "LeaveBody":
		t.clearSurface()
	}
}

func (t *Tracker) setSystem(ev journal.Event) {
	if v, ok := ev.String("StarSystem"); ok {
		t.system = v
	}
	if pos, ok := ev.Get("StarPos"); ok {
		if arr, ok := pos.([]any); ok && len(arr) == 3 {
			if p, ok := geometry.PointFromValues(arr[0], arr[1], arr[2]); ok {
				t.coords = &p
			}
		}
	}
}

func (t *Tracker) clearSurface() {
	t.body = ""
	t.lat, t.lon = nil, nil
}

func floatPtr(ev journal.Event, field string) *float64 {
	f, ok := ev.Number(field)
	if !ok {
		return nil
	}
	return &f
}

// Context returns the reporting context for the current session.
func (t *Tracker) Context() report.Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	rc := report.Context{
		Commander:     t.commander,
		Beta:          t.beta,
		System:        t.system,
		Station:       t.station,
		ClientVersion: t.clientVersion,
	}
	if t.coords != nil {
		p := *t.coords
		rc.Coords = &p
	}
	return rc
}

// Surface returns the current planetary position.
func (t *Tracker) Surface() report.Surface {
	t.mu.Lock()
	defer t.mu.Unlock()
	return report.Surface{Body: t.body, Latitude: t.lat, Longitude: t.lon}
}

// Feed applies ev to the tracker and passes it on to the reporter with the
// resulting context.
func Feed(t *Tracker, r *report.Reporter, ev journal.Event) {
	t.Apply(ev)
	r.Process(t.Context(), t.Surface(), ev)
}
