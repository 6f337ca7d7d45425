package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadThreatHuntingTemplate(t *testing.T) *QueryTemplate {
	t.Helper()
	loader, err := NewTemplateLoader()
	require.NoError(t, err)

	tmpl, ok := loader.GetTemplate(DefaultTemplateID)
	require.True(t, ok, "default template must exist")
	return tmpl
}

func TestThreatHunting_Category(t *testing.T) {
	tmpl := loadThreatHuntingTemplate(t)

	assert.Equal(t, General, tmpl.Category)
}

func TestThreatHunting_QueryStructure(t *testing.T) {
	tmpl := loadThreatHuntingTemplate(t)
	query := tmpl.Query

	assert.Contains(t, query, "{table_name}")
	assert.Contains(t, query, "{search_field}")
	assert.Contains(t, query, "take {limit}")
}

func TestThreatHunting_DefaultsCoverEveryPlaceholder(t *testing.T) {
	tmpl := loadThreatHuntingTemplate(t)
	defaults := tmpl.Defaults()

	for _, name := range Placeholders(tmpl.Query) {
		assert.NotEmpty(t, defaults[name], "placeholder %s has no default", name)
	}
	assert.Equal(t, "SecurityEvent", defaults["table_name"])
	assert.Equal(t, "100", defaults["limit"])
}
