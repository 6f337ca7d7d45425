package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePromptFailedLogins(t *testing.T) {
	resolver := newResolver(t)

	resolved, err := resolver.ResolvePrompt("failed logins in the last 24 hours", nil)
	require.NoError(t, err)

	assert.Equal(t, "failed_logins", resolved.TemplateID)
	assert.Equal(t, "24h", resolved.Parameters["timeframe"])
	assert.Contains(t, resolved.Query, "SigninLogs")
}

func TestResolvePromptTimeframeDays(t *testing.T) {
	resolver := newResolver(t)

	resolved, err := resolver.ResolvePrompt("network traffic over the past 7 days", nil)
	require.NoError(t, err)

	assert.Equal(t, "network_connections", resolved.TemplateID)
	assert.Equal(t, "7d", resolved.Parameters["timeframe"])
}

func TestResolvePromptEveryRuleTriggerSet(t *testing.T) {
	resolver := newResolver(t)

	// Trigger words chosen to satisfy exactly one rule each.
	cases := map[string]string{
		"signin anomalies":        "failed_logins",
		"password spray activity": "failed_logins",
		"execution on endpoints":  "suspicious_processes",
		"outbound traffic spikes": "network_connections",
		"modification events":     "file_modifications",
		"escalation to admin":     "privilege_escalation",
	}

	for prompt, want := range cases {
		resolved, err := resolver.ResolvePrompt(prompt, nil)
		require.NoError(t, err, "prompt %q", prompt)
		assert.Equal(t, want, resolved.TemplateID, "prompt %q", prompt)
	}
}

func TestResolvePromptAllMatchRequiresEveryKeyword(t *testing.T) {
	resolver := newResolver(t)

	// "spray" alone must not satisfy the match-all rule, and matches
	// nothing else, so it falls through to the default template.
	resolved, err := resolver.ResolvePrompt("spray", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplateID, resolved.TemplateID)
}

func TestResolvePromptUnrecognizedFallsBack(t *testing.T) {
	resolver := newResolver(t)

	resolved, err := resolver.ResolvePrompt("kerberoasting attempts", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTemplateID, resolved.TemplateID)
	assert.Equal(t, "kerberoasting attempts", resolved.Parameters["search_term"])
	assert.Contains(t, resolved.Query, `has "kerberoasting attempts"`)
}

func TestResolvePromptEmptyFallsBack(t *testing.T) {
	resolver := newResolver(t)

	resolved, err := resolver.ResolvePrompt("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTemplateID, resolved.TemplateID)
	assert.Equal(t, "*", resolved.Parameters["search_term"])
	assert.Empty(t, Placeholders(resolved.Query))
}

func TestResolvePromptOverridesBeatDerived(t *testing.T) {
	resolver := newResolver(t)

	resolved, err := resolver.ResolvePrompt("failed logins in the last 24 hours", map[string]string{
		"timeframe": "90d",
	})
	require.NoError(t, err)

	assert.Equal(t, "90d", resolved.Parameters["timeframe"])
	assert.Contains(t, resolved.Query, "ago(90d)")
}

func TestRulesSortedByPriority(t *testing.T) {
	resolver := newResolver(t)

	rules := resolver.Rules()
	require.NotEmpty(t, rules)
	for i := 1; i < len(rules); i++ {
		assert.LessOrEqual(t, rules[i-1].Priority, rules[i].Priority)
	}
}

func TestDeriveParameters(t *testing.T) {
	cases := map[string]string{
		"last 24 hours":    "24h",
		"past 12h":         "12h",
		"previous 7 days":  "7d",
		"over 30d":         "30d",
		"past 2 hrs":       "2h",
		"nothing temporal": "",
	}

	for prompt, want := range cases {
		derived := deriveParameters(prompt)
		if want == "" {
			assert.NotContains(t, derived, "timeframe", "prompt %q", prompt)
		} else {
			assert.Equal(t, want, derived["timeframe"], "prompt %q", prompt)
		}
	}
}
