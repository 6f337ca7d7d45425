package outputproviders

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/haystacksec/kustodian/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFileProviderWrite(t *testing.T) {
	dir := t.TempDir()
	fp := NewPlainFileProvider(dir, "query.kql")

	result := types.NewResult("query-generate", "SigninLogs\n| take 10")
	require.NoError(t, fp.Write(result))

	data, err := os.ReadFile(filepath.Join(dir, "query.kql"))
	require.NoError(t, err)
	assert.Equal(t, "SigninLogs\n| take 10", string(data))
}

func TestPlainFileProviderDefaultFileName(t *testing.T) {
	dir := t.TempDir()
	fp := NewPlainFileProvider(dir, "")

	result := types.NewResult("query-generate", "query text")
	require.NoError(t, fp.Write(result))

	matches, err := filepath.Glob(filepath.Join(dir, "query-generate-*.txt"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestJsonFileProviderWrite(t *testing.T) {
	dir := t.TempDir()
	fp := NewJsonFileProvider(dir)

	result := types.NewResult("assess", map[string]int{"total_controls": 5}, types.WithFilename("report.json"))
	require.NoError(t, fp.Write(result))

	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 5, decoded["total_controls"])
}

func TestJsonFileProviderSkipsMarkdownTables(t *testing.T) {
	dir := t.TempDir()
	fp := NewJsonFileProvider(dir)

	table := types.MarkdownTable{Headers: []string{"Control"}, Rows: [][]string{{"3.1.1"}}}
	require.NoError(t, fp.Write(types.NewResult("gap-analysis", table)))

	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMarkdownFileProviderRejectsNonTables(t *testing.T) {
	fp := NewMarkdownFileProvider(t.TempDir())
	err := fp.Write(types.NewResult("gap-analysis", "not a table"))
	assert.Error(t, err)
}

func TestAtomicWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	err := writeFileAtomic(target, func(w io.Writer) error {
		io.WriteString(w, "partial content")
		return errors.New("downstream failure")
	})
	require.Error(t, err)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "no destination file should exist after a failed write")

	matches, globErr := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, globErr)
	assert.Empty(t, matches, "no temp files should remain after a failed write")
}
