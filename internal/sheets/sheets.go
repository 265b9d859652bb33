// Package sheets fetches and parses the spreadsheet-backed content log. The
// gviz endpoint wraps its JSON payload in a JS callback; the parser strips
// the wrapper, walks table.rows, and keeps only rows whose date cell parses
// to a valid calendar date.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/contentdeck/internal/content"
)

const defaultBaseURL = "https://docs.google.com/spreadsheets/d"

// Snapshot is one immutable fetch of the log. Each refresh produces a new
// snapshot with its own ID; the previous one stays valid until replaced.
type Snapshot struct {
	ID        string
	FetchedAt time.Time
	Items     []content.Item
}

// Client fetches the published sheet.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sheetID    string
	sheetName  string
}

// NewClient builds a client for one spreadsheet tab.
func NewClient(sheetID, sheetName string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		sheetID:    sheetID,
		sheetName:  sheetName,
	}
}

// WithBaseURL overrides the endpoint root, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

// Fetch downloads and parses the sheet into a fresh snapshot.
func (c *Client) Fetch(ctx context.Context) (Snapshot, error) {
	if c.sheetID == "" {
		return Snapshot{}, fmt.Errorf("sheets: no sheet id configured")
	}
	endpoint := fmt.Sprintf("%s/%s/gviz/tq?sheet=%s&tqx=out:json", c.baseURL, c.sheetID, url.QueryEscape(c.sheetName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sheets: build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sheets: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("sheets: fetch: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sheets: read body: %w", err)
	}

	items, err := Parse(body)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{ID: uuid.NewString(), FetchedAt: time.Now(), Items: items}, nil
}

// gviz response shape, reduced to the fields we read.
type gvizResponse struct {
	Table struct {
		Rows []struct {
			C []*gvizCell `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

type gvizCell struct {
	V any `json:"v"`
}

// Parse decodes a gviz response body into items. Rows with a missing or
// unparseable date are dropped; all other fields default to empty strings,
// the creator to Unassigned.
func Parse(body []byte) ([]content.Item, error) {
	raw, err := stripWrapper(body)
	if err != nil {
		return nil, err
	}
	var resp gvizResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("sheets: decode response: %w", err)
	}

	var items []content.Item
	for _, row := range resp.Table.Rows {
		date, ok := parseDateCell(cellValue(row.C, 0))
		if !ok {
			continue
		}
		creator := cellString(row.C, 7)
		if creator == "" {
			creator = content.Unassigned
		}
		items = append(items, content.Item{
			Date:       date,
			VideoType:  cellString(row.C, 1),
			Location:   cellString(row.C, 2),
			Topic:      cellString(row.C, 3),
			ScriptLink: cellString(row.C, 4),
			Platform:   cellString(row.C, 5),
			Status:     cellString(row.C, 6),
			Creator:    creator,
			Caption:    cellString(row.C, 8),
		})
	}
	return items, nil
}

// stripWrapper cuts the payload down to the outermost JSON object, removing
// the google.visualization.Query.setResponse(...) callback around it.
func stripWrapper(body []byte) ([]byte, error) {
	s := string(body)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("sheets: no JSON object in response")
	}
	return []byte(s[start : end+1]), nil
}

func cellValue(cells []*gvizCell, i int) any {
	if i >= len(cells) || cells[i] == nil {
		return nil
	}
	return cells[i].V
}

func cellString(cells []*gvizCell, i int) string {
	v := cellValue(cells, i)
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// dateLayouts are the plain-string formats accepted besides the gviz
// Date(...) form.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
}

// parseDateCell handles the two cell shapes the endpoint produces: the
// "Date(y,m,d[,hh,mm,ss])" literal with a zero-based month, and plain date
// strings.
func parseDateCell(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	if strings.HasPrefix(s, "Date(") && strings.HasSuffix(s, ")") {
		return parseGvizDate(s)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseGvizDate(s string) (time.Time, bool) {
	parts := strings.Split(s[len("Date("):len(s)-1], ",")
	if len(parts) < 3 {
		return time.Time{}, false
	}
	nums := make([]int, 0, 6)
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums = append(nums, n)
	}
	for len(nums) < 6 {
		nums = append(nums, 0)
	}
	// gviz months are zero-based
	return time.Date(nums[0], time.Month(nums[1]+1), nums[2], nums[3], nums[4], nums[5], 0, time.UTC), true
}
