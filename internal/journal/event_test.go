package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFieldEquals(t *testing.T) {
	ev, err := Decode([]byte(`{"event":"ShipTargeted","ScanStage":3,"TargetLocked":true,"Ship":"anaconda"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cases := []struct {
		name  string
		field string
		value any
		want  bool
	}{
		{"number vs int", "ScanStage", 3, true},
		{"number vs float", "ScanStage", 3.0, true},
		{"number vs other", "ScanStage", 2, false},
		{"number vs string", "ScanStage", "3", false},
		{"bool", "TargetLocked", true, true},
		{"bool mismatch", "TargetLocked", false, false},
		{"string", "Ship", "anaconda", true},
		{"absent", "PilotName", "x", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ev.FieldEquals(tc.field, tc.value); got != tc.want {
				t.Fatalf("FieldEquals(%q, %v) = %v, want %v", tc.field, tc.value, got, tc.want)
			}
		})
	}
}

func TestFieldEqualsNestedValueIsFalse(t *testing.T) {
	ev := Event{"TG_ENCOUNTERS": map[string]any{"a": 1}}
	if ev.FieldEquals("TG_ENCOUNTERS", "a") {
		t.Fatalf("nested mapping must not equal a string")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{"HIP 16378", "HIP 16378"},
		{true, "True"},
		{false, "False"},
		{json.Number("250414621860"), "250414621860"},
		{json.Number("-78.59375"), "-78.59375"},
		{2500.0, "2500.0"},
		{-2.0, "-2.0"},
		{0.0, "0.0"},
		{380.33, "380.33"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
		{7, "7"},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Fatalf("Format(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{-2, "-2"},
		{2.5, "2.5"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestObjectAndClone(t *testing.T) {
	ev, err := Decode([]byte(`{"event":"Statistics","TG_ENCOUNTERS":{"TG_ENCOUNTER_TOTAL":4}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tg, ok := ev.Object("TG_ENCOUNTERS")
	if !ok {
		t.Fatalf("expected nested object")
	}
	if v, ok := tg.Number("TG_ENCOUNTER_TOTAL"); !ok || v != 4 {
		t.Fatalf("TG_ENCOUNTER_TOTAL = %v, %v", v, ok)
	}
	if _, ok := ev.Object("event"); ok {
		t.Fatalf("string field must not be an object")
	}
	cp := ev.Clone()
	cp["event"] = "Other"
	if ev.Name() != "Statistics" {
		t.Fatalf("clone mutated original")
	}
}

func TestText(t *testing.T) {
	ev := Event{"event": "RedeemVoucher", "Amount": json.Number("1000"), "Type": "bounty"}
	want := `{"Amount":1000,"Type":"bounty","event":"RedeemVoucher"}`
	if got := ev.Text(); got != want {
		t.Fatalf("Text() = %s, want %s", got, want)
	}
	if got := (Event{"Faction": "Bread & Butter"}).Text(); got != `{"Faction":"Bread & Butter"}` {
		t.Fatalf("Text() escaped HTML: %s", got)
	}
}

func TestReadLog(t *testing.T) {
	input := strings.Join([]string{
		`{"timestamp":"2019-01-19T23:22:26Z","event":"Fileheader"}`,
		``,
		`not json`,
		`{"timestamp":"2019-01-19T23:22:27Z","event":"LoadGame","Commander":"Jameson"}`,
	}, "\n")
	var names []string
	err := ReadLog(context.Background(), bytes.NewBufferString(input), 0, func(ev Event) error {
		names = append(names, ev.Name())
		return nil
	})
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(names) != 2 || names[0] != "Fileheader" || names[1] != "LoadGame" {
		t.Fatalf("unexpected events %v", names)
	}
}

func TestReadLogStopsOnHandlerError(t *testing.T) {
	input := "{\"event\":\"A\"}\n{\"event\":\"B\"}\n"
	stop := errors.New("stop")
	calls := 0
	err := ReadLog(context.Background(), strings.NewReader(input), 0, func(Event) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestReadLogSkipsOversizedLine(t *testing.T) {
	input := `{"event":"A"}` + "\n" +
		`{"event":"Big","Data":"` + strings.Repeat("x", maxLineSize) + `"}` + "\n" +
		`{"event":"B"}`
	var names []string
	err := ReadLog(context.Background(), strings.NewReader(input), 0, func(ev Event) error {
		names = append(names, ev.Name())
		return nil
	})
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Fatalf("unexpected events %v", names)
	}
}
