package files

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, dir, name string, members map[string]string, order []string) Source {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, member := range order {
		f, err := zw.Create(member)
		require.NoError(t, err)
		_, err = f.Write([]byte(members[member]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return Source{Path: path, Name: name, Archive: true}
}

func drainTable(t *testing.T, table *Table) []Row {
	t.Helper()
	var rows []Row
	for {
		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestVisitTables_PlainCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "enrolments.csv", "State,Count\nDelhi,3\n")

	w := NewWalker(nil)
	var visited []string
	err := w.VisitTables(context.Background(), Source{Path: path, Name: "enrolments.csv"},
		func(name string, table *Table) error {
			visited = append(visited, name)
			rows := drainTable(t, table)
			require.Len(t, rows, 1)
			assert.Equal(t, "Delhi", rows[0]["State"])
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, []string{"enrolments.csv"}, visited)
}

func TestVisitTables_PlainCSVEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.csv", "")

	w := NewWalker(nil)
	err := w.VisitTables(context.Background(), Source{Path: path, Name: "empty.csv"},
		func(string, *Table) error {
			t.Fatal("visit must not be called for an empty file")
			return nil
		})
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestVisitTables_Archive(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "bundle.zip", map[string]string{
		"north.csv":  "State,Count\nDelhi,1\n",
		"south.CSV":  "State,Count\nGoa,2\n",
		"readme.txt": "not a table",
	}, []string{"north.csv", "south.CSV", "readme.txt"})

	w := NewWalker(nil)
	var visited []string
	var totalRows int
	err := w.VisitTables(context.Background(), src, func(name string, table *Table) error {
		visited = append(visited, name)
		totalRows += len(drainTable(t, table))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"bundle.zip/north.csv", "bundle.zip/south.CSV"}, visited)
	assert.Equal(t, 2, totalRows)
}

func TestVisitTables_ArchiveScratchCleanup(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "bundle.zip", map[string]string{
		"good.csv":   "State,Count\nDelhi,1\n",
		"broken.csv": "",
	}, []string{"good.csv", "broken.csv"})

	w := NewWalker(nil)
	err := w.VisitTables(context.Background(), src, func(name string, table *Table) error {
		drainTable(t, table)
		return nil
	})
	require.NoError(t, err)

	// Scratch copies must be gone, including the one for the member that
	// had no usable table.
	for _, member := range []string{"good.csv", "broken.csv"} {
		leftovers, globErr := filepath.Glob(filepath.Join(os.TempDir(), "uidai-*-"+member))
		require.NoError(t, globErr)
		assert.Empty(t, leftovers, "scratch file for %s not cleaned up", member)
	}
}

func TestVisitTables_ArchiveEmptyMemberSkipped(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "bundle.zip", map[string]string{
		"empty.csv": "",
		"good.csv":  "State,Count\nDelhi,1\n",
	}, []string{"empty.csv", "good.csv"})

	w := NewWalker(nil)
	var visited []string
	err := w.VisitTables(context.Background(), src, func(name string, table *Table) error {
		visited = append(visited, name)
		drainTable(t, table)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"bundle.zip/good.csv"}, visited,
		"the empty member is skipped, the good one still processed")
}

func TestVisitTables_VisitErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "bundle.zip", map[string]string{
		"a.csv": "State,Count\nDelhi,1\n",
		"b.csv": "State,Count\nGoa,2\n",
	}, []string{"a.csv", "b.csv"})

	sentinel := errors.New("stop")
	w := NewWalker(nil)
	var visits int
	err := w.VisitTables(context.Background(), src, func(string, *Table) error {
		visits++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, visits)
}

func TestVisitTables_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "bundle.zip", map[string]string{
		"a.csv": "State,Count\nDelhi,1\n",
	}, []string{"a.csv"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWalker(nil)
	err := w.VisitTables(ctx, src, func(string, *Table) error {
		t.Fatal("must not visit after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVisitTables_MissingFile(t *testing.T) {
	w := NewWalker(nil)
	err := w.VisitTables(context.Background(),
		Source{Path: filepath.Join(t.TempDir(), "gone.csv"), Name: "gone.csv"},
		func(string, *Table) error { return nil })
	assert.Error(t, err)
}
