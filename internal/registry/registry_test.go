package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLookup(t *testing.T) {
	Register("sentinel", "query", Tool{
		Name:        "test-generate",
		Description: "test tool",
		Params:      []Param{{Name: "template", Default: "threat_hunting"}},
		Run: func(args map[string]string) (string, error) {
			return args["template"], nil
		},
	})

	tool, ok := GetTool("test-generate")
	require.True(t, ok)
	assert.Equal(t, "test tool", tool.Description)

	out, err := tool.Run(map[string]string{"template": "failed_logins"})
	require.NoError(t, err)
	assert.Equal(t, "failed_logins", out)

	entry, ok := GetRegistryEntry("test-generate")
	require.True(t, ok)
	assert.Equal(t, "sentinel", entry.ToolHierarchy.Platform)
	assert.Equal(t, "query", entry.ToolHierarchy.Category)

	assert.Contains(t, Names(), "test-generate")
}

func TestGetToolMissing(t *testing.T) {
	_, ok := GetTool("no-such-tool")
	assert.False(t, ok)
}

func TestHierarchyCopyIsIndependent(t *testing.T) {
	Register("sentinel", "query", Tool{Name: "test-hierarchy"})

	tree := GetHierarchy()
	tree["sentinel"]["query"] = nil

	fresh := GetHierarchy()
	assert.Contains(t, fresh["sentinel"]["query"], "test-hierarchy")
}
