package cmd

import (
	"context"
	"testing"

	"github.com/haystacksec/kustodian/internal/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Name = name
	request.Params.Arguments = args
	return request
}

func TestToolHandlerGenerateQueryFromPrompt(t *testing.T) {
	request := callToolRequest("generate-query", map[string]any{
		"prompt": "failed logins in the last 24 hours",
	})

	result, err := toolHandler(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.Contains(t, text.Text, "SigninLogs")
	assert.Contains(t, text.Text, "ago(24h)")
}

func TestToolHandlerUnknownControlIsToolError(t *testing.T) {
	request := callToolRequest("assess-control", map[string]any{
		"control": "3.99.1",
	})

	result, err := toolHandler(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestToolHandlerUnknownTool(t *testing.T) {
	_, err := toolHandler(context.Background(), callToolRequest("no-such-tool", nil))
	assert.Error(t, err)
}

func TestToolHandlerNonMapArguments(t *testing.T) {
	// Arguments arriving as anything but an object yield an empty
	// argument set, not a panic.
	var request mcp.CallToolRequest
	request.Params.Name = "run-assessment"
	request.Params.Arguments = "not an object"

	result, err := toolHandler(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestToolAdapterExposesRegistryParams(t *testing.T) {
	entry, ok := registry.GetRegistryEntry("assess-control")
	require.True(t, ok)

	tool := toolAdapter(entry.Tool)
	assert.Equal(t, "assess-control", tool.Name)
	require.Contains(t, tool.InputSchema.Properties, "control")
	assert.Contains(t, tool.InputSchema.Required, "control")
}
