package jq

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformJqQuery(t *testing.T) {
	jsonContent := []byte(`{"tool": "query-generate", "data": {"template_id": "failed_logins"}}`)

	result, err := PerformJqQuery(jsonContent, ".data.template_id")
	require.NoError(t, err)
	assert.Equal(t, `"failed_logins"`, string(result))
}

func TestPerformJqQueryInvalidQuery(t *testing.T) {
	_, err := PerformJqQuery([]byte(`{}`), "][")
	assert.Error(t, err)
}

func TestPerformJqQueryInvalidJson(t *testing.T) {
	_, err := PerformJqQuery([]byte(`not json`), ".")
	assert.Error(t, err)
}

func TestPerformJqQueryOnFile(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "report*.json")
	require.NoError(t, err)
	defer tempFile.Close()

	_, err = tempFile.Write([]byte(`{"total_controls": 5}`))
	require.NoError(t, err)

	result, err := PerformJqQueryOnFile(tempFile.Name(), ".total_controls")
	require.NoError(t, err)
	assert.Equal(t, "5", string(result))
}

func TestPerformJqQueryOnMissingFile(t *testing.T) {
	_, err := PerformJqQueryOnFile("nonexistent.json", ".")
	assert.Error(t, err)
}
