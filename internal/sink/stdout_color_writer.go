package sink

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorStdoutWriter prints report rows using ANSI colors.
type ColorStdoutWriter struct {
	out            io.Writer
	mu             sync.Mutex
	categoryColors map[string]string
	colorIdx       int
}

var categoryPalette = []string{colorGreen, colorYellow, colorBlue, colorMagenta, colorCyan}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to out.
func NewColorStdoutWriter(out io.Writer) *ColorStdoutWriter {
	return &ColorStdoutWriter{out: out, categoryColors: make(map[string]string)}
}

// NewStdoutWriter picks colorized output when out is a terminal and JSON
// lines otherwise.
func NewStdoutWriter(out io.Writer) ReportWriter {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewColorStdoutWriter(out)
	}
	return NewJSONStdoutWriter(out)
}

func (w *ColorStdoutWriter) getCategoryColor(c string) string {
	if col, ok := w.categoryColors[c]; ok {
		return col
	}
	col := categoryPalette[w.colorIdx%len(categoryPalette)]
	w.categoryColors[c] = col
	w.colorIdx++
	return col
}

// WriteReport outputs a single report row in colorized format.
func (w *ColorStdoutWriter) WriteReport(row ReportRow) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	statusColor := colorGreen
	switch row.Status {
	case StatusFailed:
		statusColor = colorRed
	case StatusDryRun:
		statusColor = colorYellow
	}

	fmt.Fprintf(w.out, "%s[%s]%s ", colorGray, row.Timestamp.Format(time.RFC3339), colorReset)
	fmt.Fprintf(w.out, "%s%-16s%s ", w.getCategoryColor(row.Category), row.Category, colorReset)
	fmt.Fprintf(w.out, "%sstatus=%s%s ", statusColor, row.Status, colorReset)
	fmt.Fprintf(w.out, "cmdr=%s system=%q", row.Commander, row.System)
	keys := make([]string, 0, len(row.Fields))
	for k := range row.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w.out, " %s%s=%q%s", colorGray, k, row.Fields[k], colorReset)
	}
	if row.Error != "" {
		fmt.Fprintf(w.out, " %serr=%s%s", colorRed, row.Error, colorReset)
	}
	_, err := fmt.Fprintln(w.out)
	return err
}
