package sink

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONStdoutWriter prints report rows as JSON lines.
type JSONStdoutWriter struct {
	out io.Writer
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to out.
func NewJSONStdoutWriter(out io.Writer) *JSONStdoutWriter {
	return &JSONStdoutWriter{out: out}
}

// WriteReport outputs a report row in JSON format.
func (w *JSONStdoutWriter) WriteReport(row ReportRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}

// WriteReports outputs multiple report rows in JSON format.
func (w *JSONStdoutWriter) WriteReports(rows []ReportRow) error {
	for _, r := range rows {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	return nil
}
