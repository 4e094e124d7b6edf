package report

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"cec-reporter/internal/geometry"
	"cec-reporter/internal/journal"
)

// Category identifies the report form a request targets.
type Category string

const (
	CategoryFactionKill Category = "faction_kill"
	CategoryCodex       Category = "codex"
	CategoryAXZone      Category = "ax_conflict_zone"
	CategoryStatistics  Category = "tg_statistics"
	CategoryNHSS        Category = "nhss"
	CategoryNHSSSummary Category = "nhss_summary"
	CategoryShipScan    Category = "ship_scan"
	CategoryActivity    Category = "activity"
)

// Field is one form entry. Key is the numeric form-field identifier.
type Field struct {
	Key   string
	Value string
}

// Request is a fully built form submission.
type Request struct {
	ID            string
	Category      Category
	Method        string
	Target        string
	Fields        []Field
	Commander     string
	System        string
	ClientVersion string
}

// URL returns the target address with every field appended as a
// percent-encoded "entry.<key>" query parameter, in field order.
func (r Request) URL() string {
	var sb strings.Builder
	sb.WriteString(r.Target)
	for _, f := range r.Fields {
		sb.WriteString("&entry.")
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.Value))
	}
	return sb.String()
}

// Lookup returns the value of the field with the given key.
func (r Request) Lookup(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Submitter hands built requests to the network. One call is one unit of
// asynchronous work; implementations must not block the caller on I/O and
// must not surface failures.
type Submitter interface {
	Submit(reqs ...Request)
}

// Context is the host-supplied state accompanying an event.
type Context struct {
	Commander     string
	Beta          bool
	System        string
	Station       string // empty when not docked
	Coords        *geometry.Point
	ClientVersion string
}

// Surface describes the player's position on a planetary body, if any.
type Surface struct {
	Body      string
	Latitude  *float64
	Longitude *float64
}

func (c Context) coord(axis byte) string {
	if c.Coords == nil {
		return journal.None
	}
	switch axis {
	case 'x':
		return journal.Format(c.Coords.X)
	case 'y':
		return journal.Format(c.Coords.Y)
	default:
		return journal.Format(c.Coords.Z)
	}
}

type requestBuilder struct {
	req Request
}

func newRequest(cat Category, method, target string, rc Context) *requestBuilder {
	return &requestBuilder{req: Request{
		ID:            uuid.NewString(),
		Category:      cat,
		Method:        method,
		Target:        target,
		Commander:     rc.Commander,
		System:        rc.System,
		ClientVersion: rc.ClientVersion,
	}}
}

func (b *requestBuilder) add(key, value string) *requestBuilder {
	b.req.Fields = append(b.req.Fields, Field{Key: key, Value: value})
	return b
}

func (b *requestBuilder) build() Request {
	return b.req
}

// Both form methods used by the remote endpoints.
const (
	methodGet  = http.MethodGet
	methodPost = http.MethodPost
)
