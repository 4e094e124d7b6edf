package journal

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// None is what the remote forms receive for a value that is not there.
const None = "None"

// Format renders a journal value the way it is submitted to the forms.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return None
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case json.Number:
		return x.String()
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case *float64:
		if x == nil {
			return None
		}
		return formatFloat(*x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return None
		}
		return string(b)
	}
}

// FormatField renders e[field], or None when absent.
func (e Event) FormatField(field string) string {
	return Format(e[field])
}

// Text renders the whole record as compact JSON with sorted keys.
func (e Event) Text() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(e)); err != nil {
		return "{}"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// formatFloat renders floats the way the forms have always received them:
// integral values keep a trailing ".0", very large and very small magnitudes
// use an exponent.
func formatFloat(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// FormatNumber renders a numeric value in canonical form, integral values
// without a fraction, so that 3, 3.0 and "3" compare as one key.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
