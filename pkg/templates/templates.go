package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var EmbeddedTemplates embed.FS

// keyword_rules.yaml lives next to the templates but is loaded by the
// resolver, not the template loader.
const rulesFileName = "keyword_rules.yaml"

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// TemplateLoader loads query templates from the embedded files and an
// optional user-supplied directory.
type TemplateLoader struct {
	templates []*QueryTemplate
}

// NewTemplateLoader creates a new template loader and loads embedded templates
func NewTemplateLoader() (*TemplateLoader, error) {
	loader := &TemplateLoader{}

	entries, err := EmbeddedTemplates.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" || entry.Name() == rulesFileName {
			continue
		}

		data, err := EmbeddedTemplates.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded template %s: %v", entry.Name(), err)
		}

		template, err := parseTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("invalid embedded template %s: %w", entry.Name(), err)
		}

		loader.templates = append(loader.templates, template)
	}

	return loader, nil
}

// LoadUserTemplates loads additional templates from a user-specified directory
func (l *TemplateLoader) LoadUserTemplates(templateDir string) error {
	if templateDir == "" {
		return nil // No user templates to load
	}

	dirInfo, err := os.Stat(templateDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template directory '%s' does not exist", templateDir)
		}
		return fmt.Errorf("failed to access template directory: %v", err)
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("'%s' is not a directory", templateDir)
	}

	files, err := filepath.Glob(filepath.Join(templateDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to list template files: %v", err)
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %v", file, err)
		}

		template, err := parseTemplate(data)
		if err != nil {
			return fmt.Errorf("invalid template %s: %w", file, err)
		}

		l.templates = append(l.templates, template)
	}

	return nil
}

// GetTemplates returns all loaded templates
func (l *TemplateLoader) GetTemplates() []*QueryTemplate {
	if len(l.templates) == 0 {
		return []*QueryTemplate{}
	}
	return l.templates
}

// GetTemplate returns the template with the given id
func (l *TemplateLoader) GetTemplate(id string) (*QueryTemplate, bool) {
	for _, t := range l.templates {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// IDs returns all loaded template ids in sorted order
func (l *TemplateLoader) IDs() []string {
	ids := make([]string, 0, len(l.templates))
	for _, t := range l.templates {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}

func parseTemplate(data []byte) (*QueryTemplate, error) {
	var template QueryTemplate
	if err := yaml.Unmarshal(data, &template); err != nil {
		return nil, fmt.Errorf("failed to parse template: %v", err)
	}

	if err := validateTemplate(&template); err != nil {
		return nil, err
	}

	return &template, nil
}

// validateTemplate performs basic validation of a template. Every
// placeholder in the query skeleton must be declared as a parameter
// with a non-empty default, so that resolution with no overrides
// always succeeds.
func validateTemplate(template *QueryTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("template ID is required")
	}
	if template.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if template.Query == "" {
		return fmt.Errorf("template query is required")
	}
	if !template.Category.Valid() {
		return fmt.Errorf("template category %q is not one of security-event, endpoint, network, general", template.Category)
	}

	declared := make(map[string]bool, len(template.Parameters))
	for _, p := range template.Parameters {
		if p.Name == "" {
			return fmt.Errorf("template parameter name is required")
		}
		if p.Default == "" {
			return fmt.Errorf("template parameter %q has no default value", p.Name)
		}
		declared[p.Name] = true
	}

	var unbound []string
	for _, name := range Placeholders(template.Query) {
		if !declared[name] {
			unbound = append(unbound, name)
		}
	}
	if len(unbound) > 0 {
		return &UnboundPlaceholderError{TemplateID: template.ID, Placeholders: unbound}
	}

	return nil
}

// Placeholders returns the distinct placeholder names in a query
// skeleton in order of first appearance.
func Placeholders(query string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(query, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}
