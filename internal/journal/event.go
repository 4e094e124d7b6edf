// Journal event records as emitted by the game client, one JSON object per line
package journal

import (
	"bytes"
	"encoding/json"
	"time"
)

// Event is one decoded journal record. The schema depends on the event name;
// lookups report absence instead of failing.
type Event map[string]any

// Decode parses a single journal line. Numbers are kept as json.Number so
// integral identifiers such as SystemAddress survive unchanged.
func Decode(line []byte) (Event, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var ev Event
	if err := dec.Decode(&ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Name returns the value of the "event" field or "" if missing.
func (e Event) Name() string {
	s, _ := e.String("event")
	return s
}

// Timestamp parses the "timestamp" field.
func (e Event) Timestamp() (time.Time, bool) {
	s, ok := e.String("timestamp")
	if !ok {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Has reports whether field is present (a null value counts as present).
func (e Event) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the raw value of field.
func (e Event) Get(field string) (any, bool) {
	v, ok := e[field]
	return v, ok
}

// FieldEquals is true iff field exists and its value equals value.
// Numbers compare by value regardless of representation; strings never
// equal numbers.
func (e Event) FieldEquals(field string, value any) bool {
	v, ok := e[field]
	if !ok {
		return false
	}
	return equal(v, value)
}

// FieldIn is FieldEquals against any of values.
func (e Event) FieldIn(field string, values ...any) bool {
	for _, v := range values {
		if e.FieldEquals(field, v) {
			return true
		}
	}
	return false
}

// String returns field if it holds a string.
func (e Event) String(field string) (string, bool) {
	s, ok := e[field].(string)
	return s, ok
}

// Bool returns field if it holds a boolean.
func (e Event) Bool(field string) (bool, bool) {
	b, ok := e[field].(bool)
	return b, ok
}

// Number returns field as float64 if it holds a number.
func (e Event) Number(field string) (float64, bool) {
	return number(e[field])
}

// Object returns field if it holds a nested mapping.
func (e Event) Object(field string) (Event, bool) {
	switch m := e[field].(type) {
	case map[string]any:
		return Event(m), true
	case Event:
		return m, true
	default:
		return nil, false
	}
}

// Clone returns a shallow copy of e.
func (e Event) Clone() Event {
	out := make(Event, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

func equal(a, b any) bool {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return false
}

// AsNumber converts a decoded numeric value to float64. Strings are not
// numbers.
func AsNumber(v any) (float64, bool) {
	return number(v)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
