package session

import (
	"sync"
	"testing"

	"cec-reporter/internal/journal"
	"cec-reporter/internal/report"
)

func apply(t *testing.T, tr *Tracker, lines ...string) {
	t.Helper()
	for _, l := range lines {
		ev, err := journal.Decode([]byte(l))
		if err != nil {
			t.Fatalf("decode %s: %v", l, err)
		}
		tr.Apply(ev)
	}
}

func TestTrackerLocationAndDocking(t *testing.T) {
	tr := NewTracker("Default", false, "cec-test")
	apply(t, tr,
		`{"event":"Fileheader","gameversion":"3.3.0.300 Beta"}`,
		`{"event":"LoadGame","Commander":"Jameson"}`,
		`{"event":"Location","Docked":true,"StationName":"Abraham Lincoln","StarSystem":"Sol","SystemAddress":10477373803,"StarPos":[0.0,0.0,0.0]}`,
	)
	rc := tr.Context()
	if rc.Commander != "Jameson" || !rc.Beta || rc.System != "Sol" || rc.Station != "Abraham Lincoln" {
		t.Fatalf("unexpected context %+v", rc)
	}
	if rc.Coords == nil || rc.Coords.X != 0 {
		t.Fatalf("expected coordinates, got %+v", rc.Coords)
	}
	if rc.ClientVersion != "cec-test" {
		t.Fatalf("client version = %q", rc.ClientVersion)
	}

	apply(t, tr,
		`{"event":"Undocked","StationName":"Abraham Lincoln"}`,
		`{"event":"FSDJump","StarSystem":"Merope","StarPos":[-78.59375,-149.625,-340.53125]}`,
	)
	rc = tr.Context()
	if rc.Station != "" || rc.System != "Merope" || rc.Coords.Y != -149.625 {
		t.Fatalf("unexpected context after jump %+v", rc)
	}
}

func TestTrackerSurface(t *testing.T) {
	tr := NewTracker("", false, "")
	apply(t, tr,
		`{"event":"ApproachBody","StarSystem":"HIP 16378","Body":"HIP 16378 A 1"}`,
		`{"event":"Touchdown","Latitude":12.5,"Longitude":-40.25}`,
	)
	s := tr.Surface()
	if s.Body != "HIP 16378 A 1" || s.Latitude == nil || *s.Latitude != 12.5 || *s.Longitude != -40.25 {
		t.Fatalf("unexpected surface %+v", s)
	}
	apply(t, tr, `{"event":"Liftoff"}`)
	if s := tr.Surface(); s.Latitude != nil || s.Body == "" {
		t.Fatalf("liftoff should clear position only: %+v", s)
	}
	apply(t, tr, `{"event":"LeaveBody"}`)
	if s := tr.Surface(); s.Body != "" {
		t.Fatalf("leave body should clear body: %+v", s)
	}
}

type countingSubmitter struct {
	mu sync.Mutex
	n  int
}

func (c *countingSubmitter) Submit(reqs ...report.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n += len(reqs)
}

func TestFeedUsesTrackedContext(t *testing.T) {
	tr := NewTracker("", false, "")
	sub := &countingSubmitter{}
	r := report.NewReporter(sub)
	for _, l := range []string{
		`{"event":"FSDJump","StarSystem":"Sol","StarPos":[0,0,0]}`,
		`{"event":"USSDrop","USSType":"$USS_Type_NonHuman;","USSThreat":3}`,
		`{"event":"USSDrop","USSType":"$USS_Type_NonHuman;","USSThreat":3}`,
	} {
		ev, err := journal.Decode([]byte(l))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		Feed(tr, r, ev)
	}
	if sub.n != 2 {
		t.Fatalf("expected 2 requests, got %d", sub.n)
	}
	if !r.Dedup().HasReported("Sol", "3") {
		t.Fatalf("expected Sol/3 to be marked")
	}
}
