package dash

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/jask/contentdeck/internal/content"
)

// SortRows returns a sorted copy of rows under the given mode. Sorting is
// stable, so rows equal under the mode keep their relative order. Unknown
// modes sort as date-desc.
func SortRows(rows []content.Item, mode string) []content.Item {
	out := make([]content.Item, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		switch mode {
		case SortDateAsc:
			return out[i].Date.Before(out[j].Date)
		case SortCreatorAsc:
			return fold(out[i].Creator) < fold(out[j].Creator)
		case SortPlatformAsc:
			return fold(out[i].Platform) < fold(out[j].Platform)
		case SortStatusAsc:
			return fold(out[i].Status) < fold(out[j].Status)
		default: // date-desc
			return out[j].Date.Before(out[i].Date)
		}
	})
	return out
}

func fold(s string) string { return strings.ToLower(s) }

// exportHeader is the fixed CSV header of the export projection.
var exportHeader = []string{"Date", "Creator", "Video Type", "Platform", "Location", "Topic", "Dropbox/Script", "Status", "Caption"}

// ExportCSV projects the rows, sorted under the given mode, into the flat
// 9-column CSV document. Quoting follows RFC 4180: fields containing a
// comma, quote or newline are quoted and embedded quotes doubled.
func ExportCSV(rows []content.Item, mode string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, it := range SortRows(rows, mode) {
		rec := []string{
			it.DayKey(),
			it.Creator,
			it.VideoType,
			it.Platform,
			it.Location,
			it.Topic,
			it.ScriptLink,
			it.Status,
			it.Caption,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename builds the download name for the current view:
// content_log_<month>[_<day>].csv.
func ExportFilename(monthKey, dayKey string) string {
	name := "content_log_" + monthKey
	if dayKey != "" {
		name += "_" + dayKey
	}
	return name + ".csv"
}
