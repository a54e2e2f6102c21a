package persist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// codecResult is a struct for codec round-trip testing.
type codecResult struct {
	Label  string         `json:"label" yaml:"label"`
	Counts map[string]int `json:"counts" yaml:"counts"`
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewJSONCodec()

	original := codecResult{Label: "summary", Counts: map[string]int{"a": 1, "b": 2}}

	var buf bytes.Buffer

	err := codec.Encode(&buf, original)

	require.NoError(t, err)

	var restored codecResult

	err = codec.Decode(&buf, &restored)

	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestJSONCodec_PrettyPrintsByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := NewJSONCodec().Encode(&buf, codecResult{Label: "x"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\n  \"label\"")
}

func TestJSONCodec_CompactWithoutIndent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := (&JSONCodec{}).Encode(&buf, codecResult{Label: "x"})

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestYAMLCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewYAMLCodec()

	original := codecResult{Label: "summary", Counts: map[string]int{"a": 1}}

	var buf bytes.Buffer

	err := codec.Encode(&buf, original)

	require.NoError(t, err)

	var restored codecResult

	err = codec.Decode(&buf, &restored)

	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestCodecExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".json", NewJSONCodec().Extension())
	assert.Equal(t, ".yaml", NewYAMLCodec().Extension())
}

func TestSaveResult_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mapping")

	err := SaveResult(dir, "analysis_results", NewJSONCodec(), codecResult{Label: "x"})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "analysis_results.json"))
}

func TestSaveResult_DirBlockedByFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	blocker := filepath.Join(base, "mapping")

	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := SaveResult(blocker, "analysis_results", NewJSONCodec(), codecResult{})

	assert.Error(t, err)
}

func TestLoadResult_MissingFile(t *testing.T) {
	t.Parallel()

	var restored codecResult

	err := LoadResult(t.TempDir(), "missing", NewJSONCodec(), &restored)

	assert.Error(t, err)
}
