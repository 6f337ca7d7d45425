package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTemplateID is the fallback template for prompts no keyword
// rule matches.
const DefaultTemplateID = "threat_hunting"

// promptParameter receives the raw prompt text when resolution falls
// back to the default template.
const promptParameter = "search_term"

var timeframePattern = regexp.MustCompile(`(\d+)\s*(hours?|hrs?|h|days?|d)\b`)

// Resolver maps template ids and free-text prompts to resolved
// queries. Templates and keyword rules are fixed at construction.
type Resolver struct {
	loader *TemplateLoader
	rules  []KeywordRule
}

// NewResolver builds a resolver over the embedded templates and
// keyword rules.
func NewResolver() (*Resolver, error) {
	loader, err := NewTemplateLoader()
	if err != nil {
		return nil, err
	}
	return NewResolverFromLoader(loader)
}

// NewResolverFromLoader builds a resolver over an already-populated
// loader, e.g. one extended with user templates.
func NewResolverFromLoader(loader *TemplateLoader) (*Resolver, error) {
	rules, err := loadKeywordRules(loader)
	if err != nil {
		return nil, err
	}

	if _, ok := loader.GetTemplate(DefaultTemplateID); !ok {
		return nil, fmt.Errorf("default template %q is missing", DefaultTemplateID)
	}

	return &Resolver{loader: loader, rules: rules}, nil
}

// Loader exposes the underlying template set
func (r *Resolver) Loader() *TemplateLoader {
	return r.loader
}

// Rules returns the keyword rules in evaluation order
func (r *Resolver) Rules() []KeywordRule {
	return r.rules
}

// ResolveTemplate looks up a template by id, merges overrides over the
// declared defaults and substitutes every placeholder. Override keys
// not declared on the template are ignored.
func (r *Resolver) ResolveTemplate(id string, overrides map[string]string) (*ResolvedQuery, error) {
	t, ok := r.loader.GetTemplate(id)
	if !ok {
		return nil, &UnknownTemplateError{ID: id, ValidIDs: r.loader.IDs()}
	}
	return resolve(t, overrides, nil)
}

// ResolvePrompt matches a free-text prompt against the keyword rules
// and resolves the winning rule's template. Prompts matching no rule
// resolve to the default template with the prompt bound as the search
// term. Parameter precedence: explicit overrides, then prompt-derived
// values, then declared defaults.
func (r *Resolver) ResolvePrompt(prompt string, overrides map[string]string) (*ResolvedQuery, error) {
	normalized := strings.ToLower(strings.TrimSpace(prompt))
	derived := deriveParameters(normalized)

	for _, rule := range r.rules {
		if rule.matches(normalized) {
			t, ok := r.loader.GetTemplate(rule.Template)
			if !ok {
				return nil, &UnknownTemplateError{ID: rule.Template, ValidIDs: r.loader.IDs()}
			}
			return resolve(t, overrides, derived)
		}
	}

	t, _ := r.loader.GetTemplate(DefaultTemplateID)
	if normalized != "" {
		derived[promptParameter] = strings.TrimSpace(prompt)
	}
	return resolve(t, overrides, derived)
}

func resolve(t *QueryTemplate, overrides, derived map[string]string) (*ResolvedQuery, error) {
	params := t.Defaults()
	for name, value := range derived {
		if _, declared := params[name]; declared {
			params[name] = value
		}
	}
	for name, value := range overrides {
		if _, declared := params[name]; declared {
			params[name] = value
		}
	}

	var unbound []string
	for _, name := range Placeholders(t.Query) {
		if _, ok := params[name]; !ok {
			unbound = append(unbound, name)
		}
	}
	if len(unbound) > 0 {
		return nil, &UnboundPlaceholderError{TemplateID: t.ID, Placeholders: unbound}
	}

	query := placeholderPattern.ReplaceAllStringFunc(t.Query, func(marker string) string {
		return params[marker[1:len(marker)-1]]
	})

	return &ResolvedQuery{
		TemplateID: t.ID,
		Parameters: params,
		Query:      query,
	}, nil
}

func (rule *KeywordRule) matches(normalizedPrompt string) bool {
	if normalizedPrompt == "" || len(rule.Keywords) == 0 {
		return false
	}

	for _, keyword := range rule.Keywords {
		contains := strings.Contains(normalizedPrompt, strings.ToLower(keyword))
		switch rule.Match {
		case MatchAll:
			if !contains {
				return false
			}
		default:
			if contains {
				return true
			}
		}
	}

	return rule.Match == MatchAll
}

// deriveParameters recognizes a small closed set of tokens in a
// normalized prompt. Only timeframes are recognized; everything else
// must come from overrides or defaults.
func deriveParameters(normalizedPrompt string) map[string]string {
	derived := make(map[string]string)

	if match := timeframePattern.FindStringSubmatch(normalizedPrompt); match != nil {
		unit := "h"
		if strings.HasPrefix(match[2], "d") {
			unit = "d"
		}
		derived["timeframe"] = match[1] + unit
	}

	return derived
}

func loadKeywordRules(loader *TemplateLoader) ([]KeywordRule, error) {
	data, err := EmbeddedTemplates.ReadFile(rulesFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword rules: %v", err)
	}

	var doc struct {
		Rules []KeywordRule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse keyword rules: %v", err)
	}

	for i := range doc.Rules {
		rule := &doc.Rules[i]
		if rule.Match == "" {
			rule.Match = MatchAny
		}
		if !rule.Match.Valid() {
			return nil, fmt.Errorf("keyword rule for %q has invalid match kind %q", rule.Template, rule.Match)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("keyword rule for %q has no keywords", rule.Template)
		}
		if _, ok := loader.GetTemplate(rule.Template); !ok {
			return nil, fmt.Errorf("keyword rule references unknown template %q", rule.Template)
		}
	}

	// Stable sort keeps declaration order among equal priorities
	sort.SliceStable(doc.Rules, func(i, j int) bool {
		return doc.Rules[i].Priority < doc.Rules[j].Priority
	})

	return doc.Rules, nil
}
