// Package prefs persists the dashboard view state between runs as a single
// JSON blob in the user config directory.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/contentdeck/internal/dash"
)

const stateFile = "state.json"

// test seam
var userConfigDir = os.UserConfigDir

// State is the serialized form of dash.View.
type State struct {
	Month    string `json:"month"`
	Creator  string `json:"creator"`
	Platform string `json:"platform"`
	Status   string `json:"status"`
	Search   string `json:"search"`
	Day      string `json:"day"`
	Sort     string `json:"sort"`
	Target   int    `json:"target"`
	Theme    string `json:"theme"`
}

func statePath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "contentdeck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFile), nil
}

// Save writes the view atomically.
func Save(view dash.View) error {
	path, err := statePath()
	if err != nil {
		return err
	}
	state := State{
		Month:    view.Month,
		Creator:  view.Creator,
		Platform: view.Platform,
		Status:   view.Status,
		Search:   view.Search,
		Day:      view.Day,
		Sort:     view.Sort,
		Target:   view.Target,
		Theme:    view.Theme,
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads the saved view. A missing file yields the zero view with no
// error; malformed fields are discarded rather than failing the load.
func Load() (dash.View, bool, error) {
	path, err := statePath()
	if err != nil {
		return dash.View{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dash.View{}, false, nil
		}
		return dash.View{}, false, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return dash.View{}, false, err
	}
	view := dash.View{
		Month:    state.Month,
		Creator:  state.Creator,
		Platform: state.Platform,
		Status:   strings.ToLower(strings.TrimSpace(state.Status)),
		Search:   state.Search,
		Day:      state.Day,
		Sort:     state.Sort,
		Target:   state.Target,
		Theme:    state.Theme,
	}
	return view.Normalize(), true, nil
}
