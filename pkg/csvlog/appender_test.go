package csvlog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestAppendCreatesFileAndAppends(t *testing.T) {
	dir := t.TempDir()
	a, err := NewAppender(dir)
	require.NoError(t, err)

	require.NoError(t, a.Append("feedback", []string{"Ana", "loved it", "5", "2026-08-30"}))
	require.NoError(t, a.Append("feedback", []string{"Ben", "quite calming", "4", "2026-08-30"}))

	rows := readAll(t, a.Path("feedback"))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ana", "loved it", "5", "2026-08-30"}, rows[0])
	assert.Equal(t, []string{"Ben", "quite calming", "4", "2026-08-30"}, rows[1])
}

func TestAppendQuotesEmbeddedDelimiters(t *testing.T) {
	dir := t.TempDir()
	a, err := NewAppender(dir)
	require.NoError(t, err)

	require.NoError(t, a.Append("user_info", []string{"Doe, Jane", "34", "female"}))

	rows := readAll(t, a.Path("user_info"))
	require.Len(t, rows, 1)
	assert.Equal(t, "Doe, Jane", rows[0][0])
}

func TestNewAppenderCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "logs")

	a, err := NewAppender(dir)
	require.NoError(t, err)

	require.NoError(t, a.Append("user_info", []string{"x"}))
	_, err = os.Stat(a.Path("user_info"))
	assert.NoError(t, err)
}
