package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryJSONOmitsAbsentFields(t *testing.T) {
	// Metadata that could not be read must not be synthesized as
	// zero/empty values in the structured output.
	partial := Entry{Name: "ghost", Kind: KindFile}
	out, err := json.Marshal(partial)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(out, &record))
	assert.Equal(t, "ghost", record["name"])
	assert.Equal(t, "File", record["type"])
	assert.Contains(t, record, "size_bytes")
	assert.NotContains(t, record, "modified")
	assert.NotContains(t, record, "permissions")
	assert.NotContains(t, record, "owner")
}

func TestRenderListingJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte("{}"), 0644))

	out := renderListing(Options{Path: dir, Mode: ModeJSON})

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "data.json", records[0]["name"])
	assert.Equal(t, "File", records[0]["type"])
	assert.EqualValues(t, 2, records[0]["size_bytes"])
	assert.Contains(t, records[0], "permissions")
}

func TestRenderListingJSONEmptyDir(t *testing.T) {
	out := renderListing(Options{Path: t.TempDir(), Mode: ModeJSON})
	assert.Equal(t, "[]\n", out)
}

func TestRenderListingCompact(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("hi"), 0644))

	out := renderListing(Options{Path: dir, Mode: ModeCompact})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "SIZE B")
	assert.Contains(t, out, "readme.md")
	assert.NotContains(t, out, "PERMISSION")
}

func TestRenderDetailedKeepsPartialRows(t *testing.T) {
	color.NoColor = true
	mod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Name: "ok.txt", Kind: KindFile, Size: 10, Modified: &mod, Permissions: "644", Owner: "root"},
		{Name: "broken.txt", Kind: KindFile},
	}

	var b strings.Builder
	renderDetailedTable(&b, entries)
	out := b.String()

	// The row with failed metadata is still present, not dropped.
	assert.Contains(t, out, "ok.txt")
	assert.Contains(t, out, "broken.txt")
	assert.Contains(t, out, "644")
	assert.Contains(t, out, "root")
}

func TestWriteOutputToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "listing.txt")

	require.NoError(t, writeOutput("tree goes here\n", target, false))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "tree goes here\n", string(data))
}

func TestModifiedDisplay(t *testing.T) {
	assert.Empty(t, Entry{}.modifiedDisplay())

	mod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Fri Mar  1 2024", Entry{Modified: &mod}.modifiedDisplay())
}
