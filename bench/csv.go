package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column layout of exported result files.
var csvHeader = []string{
	"Graph", "Vertices", "Edges", "Time(ms)", "Throughput(M/s)",
	"Speedup", "Reachable", "Reachable(%)",
}

// WriteCSV renders results as CSV, one row per Result, preceded by the
// header row. Returns ErrNoResults for an empty slice.
func WriteCSV(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: writing csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Name,
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			strconv.FormatFloat(r.TimeMS, 'f', 3, 64),
			strconv.FormatFloat(r.ThroughputMES, 'f', 2, 64),
			strconv.FormatFloat(r.Speedup, 'f', 2, 64),
			strconv.Itoa(r.Reachable),
			strconv.FormatFloat(r.ReachablePct, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: writing csv row for %q: %w", r.Name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
