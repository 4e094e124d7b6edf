package dashboard

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"
)

//go:embed cec-reports.json.tmpl
var reportsTemplate string

// OutputFile is the name of the rendered dashboard.
const OutputFile = "cec-reports.json"

// Options selects the GreptimeDB table the dashboard queries.
type Options struct {
	Database string
	Table    string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Render writes the Grafana dashboard for the report table to outDir. The
// datasource UID is read from GREPTIMEDB_DATASOURCE_UID.
func Render(outDir string, opts Options) (string, error) {
	for _, id := range []string{opts.Database, opts.Table} {
		if !identifier.MatchString(id) {
			return "", fmt.Errorf("invalid identifier %q", id)
		}
	}
	funcMap := template.FuncMap{
		"env": func(key string) (string, error) {
			v := os.Getenv(key)
			if v == "" {
				return "", fmt.Errorf("environment variable %s not set", key)
			}
			return v, nil
		},
	}
	t, err := template.New(OutputFile).Funcs(funcMap).Parse(reportsTemplate)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(outDir, OutputFile)
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	if err := t.Execute(f, opts); err != nil {
		f.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(outPath)
		return "", err
	}
	return outPath, nil
}
