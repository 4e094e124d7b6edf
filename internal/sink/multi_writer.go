package sink

import "errors"

// MultiWriter fans report rows out to multiple writers.
type MultiWriter struct {
	writers []ReportWriter
}

// NewMultiWriter creates a new MultiWriter. Nil writers are skipped.
func NewMultiWriter(ws ...ReportWriter) *MultiWriter {
	mw := &MultiWriter{}
	for _, w := range ws {
		if w != nil {
			mw.writers = append(mw.writers, w)
		}
	}
	return mw
}

// Len returns the number of underlying writers.
func (mw *MultiWriter) Len() int { return len(mw.writers) }

// WriteReport sends a row to all writers. Every writer is attempted; the
// errors are joined.
func (mw *MultiWriter) WriteReport(row ReportRow) error {
	var errs []error
	for _, w := range mw.writers {
		if err := w.WriteReport(row); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriteReports sends multiple rows to all writers, using batch if supported.
func (mw *MultiWriter) WriteReports(rows []ReportRow) error {
	var errs []error
	for _, w := range mw.writers {
		if bw, ok := w.(BatchReportWriter); ok {
			if err := bw.WriteReports(rows); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteReport(r); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
