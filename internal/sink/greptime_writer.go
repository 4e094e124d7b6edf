package sink

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// DefaultReportTable is used when no table name is configured.
const DefaultReportTable = "cec_reports"

const defaultGreptimePort = 4001

type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter writes report rows to GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
	log    *slog.Logger
}

// NewGreptimeDBWriter connects to endpoint ("host" or "host:port").
func NewGreptimeDBWriter(endpoint, database, tableName string) (*GreptimeDBWriter, error) {
	host, port, err := splitEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if database == "" {
		database = "public"
	}
	if tableName == "" {
		tableName = DefaultReportTable
	}
	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	return &GreptimeDBWriter{client: client, table: tableName, log: slog.Default()}, nil
}

func splitEndpoint(endpoint string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		// no port given
		return endpoint, defaultGreptimePort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid greptime endpoint %q: %w", endpoint, err)
	}
	return host, port, nil
}

// WriteReport inserts a single report row.
func (w *GreptimeDBWriter) WriteReport(row ReportRow) error {
	return w.WriteReports([]ReportRow{row})
}

// WriteReports inserts multiple report rows.
func (w *GreptimeDBWriter) WriteReports(rows []ReportRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	cols := []struct {
		name string
		tag  bool
	}{
		{"category", true},
		{"commander", true},
		{"id", false},
		{"method", false},
		{"url", false},
		{"system", false},
		{"client_version", false},
		{"status", false},
		{"error", false},
	}
	for _, c := range cols {
		if c.tag {
			err = tbl.AddTagColumn(c.name, types.STRING)
		} else {
			err = tbl.AddFieldColumn(c.name, types.STRING)
		}
		if err != nil {
			return err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	for _, r := range rows {
		if err := tbl.AddRow(r.Category, r.Commander, r.ID, r.Method, r.URL, r.System, r.ClientVersion, r.Status, r.Error, r.Timestamp); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		w.logger().Error("greptime write failed", "table", w.table, "err", err)
		return err
	}
	w.logger().Debug("greptime rows written", "table", w.table, "rows", len(rows))
	return nil
}

func (w *GreptimeDBWriter) logger() *slog.Logger {
	if w.log == nil {
		return slog.Default()
	}
	return w.log
}
