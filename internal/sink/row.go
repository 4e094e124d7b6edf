// Report journal rows: one per submission attempt
package sink

import "time"

// Submission outcomes.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
	StatusDryRun = "dry-run"
)

// ReportRow records one outbound submission.
type ReportRow struct {
	ID            string            `json:"id"`
	Category      string            `json:"category"`
	Method        string            `json:"method"`
	URL           string            `json:"url"`
	Commander     string            `json:"commander"`
	System        string            `json:"system"`
	ClientVersion string            `json:"client_version,omitempty"`
	Status        string            `json:"status"`
	Error         string            `json:"error,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Timestamp     time.Time         `json:"ts"`
}

// ReportWriter handles report rows.
type ReportWriter interface {
	WriteReport(ReportRow) error
}

// BatchReportWriter is implemented by writers that can store several rows
// in one call.
type BatchReportWriter interface {
	WriteReports([]ReportRow) error
}
