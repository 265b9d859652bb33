package dash

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/jask/contentdeck/internal/content"
)

func TestSortRows(t *testing.T) {
	rows := []content.Item{
		{Date: day(2024, time.June, 2), Creator: "bob", Platform: "YouTube", Status: "pending"},
		{Date: day(2024, time.June, 9), Creator: "Alice", Platform: "tiktok", Status: "Done"},
		{Date: day(2024, time.June, 1), Creator: "cara", Platform: "TikTok", Status: "draft"},
	}

	byDateDesc := SortRows(rows, SortDateDesc)
	if byDateDesc[0].Date.Day() != 9 || byDateDesc[2].Date.Day() != 1 {
		t.Errorf("date-desc order: %v", dates(byDateDesc))
	}

	byDateAsc := SortRows(rows, SortDateAsc)
	if byDateAsc[0].Date.Day() != 1 {
		t.Errorf("date-asc order: %v", dates(byDateAsc))
	}

	byCreator := SortRows(rows, SortCreatorAsc)
	if byCreator[0].Creator != "Alice" || byCreator[1].Creator != "bob" {
		t.Errorf("creator-asc order: %q %q %q", byCreator[0].Creator, byCreator[1].Creator, byCreator[2].Creator)
	}

	// unknown mode falls back to date-desc
	fallback := SortRows(rows, "bogus")
	if fallback[0].Date.Day() != 9 {
		t.Errorf("fallback order: %v", dates(fallback))
	}

	// input order untouched
	if rows[0].Creator != "bob" {
		t.Error("SortRows mutated its input")
	}
}

func TestSortRowsStableOnTies(t *testing.T) {
	rows := []content.Item{
		{Date: day(2024, time.June, 5), Topic: "first", Creator: "Same"},
		{Date: day(2024, time.June, 5), Topic: "second", Creator: "Same"},
		{Date: day(2024, time.June, 5), Topic: "third", Creator: "Same"},
	}
	for _, mode := range SortModes {
		out := SortRows(rows, mode)
		if out[0].Topic != "first" || out[1].Topic != "second" || out[2].Topic != "third" {
			t.Errorf("%s: tie order broken: %q %q %q", mode, out[0].Topic, out[1].Topic, out[2].Topic)
		}
	}
}

func dates(rows []content.Item) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.DayKey())
	}
	return out
}

func TestExportCSVRoundTrip(t *testing.T) {
	rows := []content.Item{
		{
			Date:    day(2024, time.June, 3),
			Creator: "Alice",
			Topic:   `A, "B"`,
			Caption: "line one\nline two",
			Status:  "done",
		},
	}
	out, err := ExportCSV(rows, SortDateDesc)
	if err != nil {
		t.Fatal(err)
	}

	r := csv.NewReader(bytes.NewReader(out))
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	header := strings.Join(recs[0], ",")
	if header != "Date,Creator,Video Type,Platform,Location,Topic,Dropbox/Script,Status,Caption" {
		t.Errorf("header = %q", header)
	}
	row := recs[1]
	if len(row) != 9 {
		t.Fatalf("row has %d columns", len(row))
	}
	if row[0] != "2024-06-03" || row[1] != "Alice" {
		t.Errorf("row = %v", row)
	}
	if row[5] != `A, "B"` {
		t.Errorf("quoted topic did not round-trip: %q", row[5])
	}
	if row[8] != "line one\nline two" {
		t.Errorf("multiline caption did not round-trip: %q", row[8])
	}
}

func TestExportCSVSortedProjection(t *testing.T) {
	rows := []content.Item{
		{Date: day(2024, time.June, 1), Creator: "Old"},
		{Date: day(2024, time.June, 9), Creator: "New"},
	}
	out, err := ExportCSV(rows, SortDateDesc)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "2024-06-09") {
		t.Errorf("first data row = %q, want newest first", lines[1])
	}
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename("2024-06", ""); got != "content_log_2024-06.csv" {
		t.Errorf("filename = %q", got)
	}
	if got := ExportFilename("2024-06", "2024-06-09"); got != "content_log_2024-06_2024-06-09.csv" {
		t.Errorf("filename with day = %q", got)
	}
}
