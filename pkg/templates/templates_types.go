package templates

type TemplateCategory string

const (
	SecurityEvent TemplateCategory = "security-event"
	Endpoint      TemplateCategory = "endpoint"
	Network       TemplateCategory = "network"
	General       TemplateCategory = "general"
)

func (c TemplateCategory) Valid() bool {
	switch c {
	case SecurityEvent, Endpoint, Network, General:
		return true
	}
	return false
}

// Parameter is a single declared template parameter with its shipped
// default value.
type Parameter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default"`
}

// QueryTemplate represents a single KQL query template
type QueryTemplate struct {
	ID          string           `yaml:"id"`          // Unique identifier for the query
	Name        string           `yaml:"name"`        // Human readable name
	Description string           `yaml:"description"` // Description of what the query looks for
	Category    TemplateCategory `yaml:"category"`    // Category of query (e.g. endpoint, network)
	Query       string           `yaml:"query"`       // The query skeleton with {placeholder} markers
	Parameters  []Parameter      `yaml:"parameters"`  // Declared parameters and defaults
	References  []string         `yaml:"references,omitempty"`
}

// Defaults returns the template's declared default parameter values.
func (t *QueryTemplate) Defaults() map[string]string {
	defaults := make(map[string]string, len(t.Parameters))
	for _, p := range t.Parameters {
		defaults[p.Name] = p.Default
	}
	return defaults
}

// ResolvedQuery is the final output of query resolution: the template
// used, the fully merged parameter values, and the substituted query
// text.
type ResolvedQuery struct {
	TemplateID string            `json:"templateId"`
	Parameters map[string]string `json:"parameters"`
	Query      string            `json:"query"`
}

// KeywordRule maps trigger words in a free-text prompt to a template.
// Rules are evaluated in ascending priority order and the first
// satisfied rule wins.
type KeywordRule struct {
	Template string    `yaml:"template"`
	Priority int       `yaml:"priority"`
	Match    MatchKind `yaml:"match"`
	Keywords []string  `yaml:"keywords"`
}

type MatchKind string

const (
	MatchAny MatchKind = "any"
	MatchAll MatchKind = "all"
)

func (m MatchKind) Valid() bool {
	return m == MatchAny || m == MatchAll
}
