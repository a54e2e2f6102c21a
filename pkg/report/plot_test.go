package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCharts(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mapping")

	path, err := WriteCharts(dir, sampleResult())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ChartsFile), path)

	data, err := os.ReadFile(path)

	require.NoError(t, err)
	assert.Contains(t, string(data), "Tickets by Brand")
	assert.Contains(t, string(data), "Users by Organization")
}

func TestWriteCharts_DirBlockedByFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	blocker := filepath.Join(base, "mapping")

	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := WriteCharts(blocker, sampleResult())

	assert.Error(t, err)
}

func TestSortedCounts(t *testing.T) {
	t.Parallel()

	labels, data := sortedCounts(map[string]int{"b": 2, "a": 2, "c": 9})

	assert.Equal(t, []string{"c", "a", "b"}, labels)
	assert.Equal(t, []int{9, 2, 2}, data)
}
