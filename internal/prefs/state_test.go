package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/contentdeck/internal/dash"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = orig })
	return dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	view := dash.View{
		Month:    "2024-06",
		Creator:  "Alice",
		Platform: "TikTok",
		Status:   "completed",
		Search:   "gym",
		Day:      "2024-06-14",
		Sort:     dash.SortCreatorAsc,
		Target:   45,
		Theme:    "mocha",
	}
	require.NoError(t, Save(view))

	got, found, err := Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, view, got)
}

func TestLoadMissingFile(t *testing.T) {
	withTempConfigDir(t)

	got, found, err := Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, dash.View{}, got)
}

func TestLoadRepairsBadFields(t *testing.T) {
	dir := withTempConfigDir(t)

	blob := `{"month":"2024-06","status":" Completed ","sort":"bogus","target":-5,"search":"GYM"}`
	path := filepath.Join(dir, "contentdeck", "state.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	got, found, err := Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, dash.SortDateDesc, got.Sort)
	assert.Equal(t, dash.DefaultTarget, got.Target)
	assert.Equal(t, "gym", got.Search)
}

func TestLoadCorruptBlob(t *testing.T) {
	dir := withTempConfigDir(t)

	path := filepath.Join(dir, "contentdeck", "state.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, found, err := Load()
	require.Error(t, err)
	assert.False(t, found)
}

func TestSaveIsAtomic(t *testing.T) {
	dir := withTempConfigDir(t)

	require.NoError(t, Save(dash.View{Month: "2024-06", Target: 30, Sort: dash.SortDateDesc}))

	entries, err := os.ReadDir(filepath.Join(dir, "contentdeck"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
