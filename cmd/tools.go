package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haystacksec/kustodian/internal/registry"
	"github.com/haystacksec/kustodian/pkg/grc"
	"github.com/haystacksec/kustodian/pkg/templates"
)

// Tool registrations shared by list-modules and the MCP server.
func init() {
	registry.Register("sentinel", "query", registry.Tool{
		Name:        "generate-query",
		Description: "Generate a KQL query from a natural language prompt or a named template",
		Params: []registry.Param{
			{Name: "prompt", Description: "Natural language prompt to generate a query from"},
			{Name: "template", Description: "Template name to generate a query from"},
			{Name: "timeframe", Description: "Lookback window override (e.g. 24h, 7d)"},
		},
		Run: runGenerateQuery,
	})

	registry.Register("sentinel", "query", registry.Tool{
		Name:        "list-templates",
		Description: "List the available KQL query templates",
		Run:         runListTemplates,
	})

	registry.Register("grc", "assess", registry.Tool{
		Name:        "run-assessment",
		Description: "Run the full NIST 800-171 compliance assessment",
		Params: []registry.Param{
			{Name: "format", Description: "Output format (json or summary)", Default: string(grc.FormatSummary)},
			{Name: "detailed", Description: "Include findings and recommendations (true/false)", Default: "false"},
		},
		Run: runAssessment,
	})

	registry.Register("grc", "assess", registry.Tool{
		Name:        "assess-control",
		Description: "Assess a single NIST 800-171 control by id",
		Params: []registry.Param{
			{Name: "control", Description: "Control id (e.g. 3.1.1)", Required: true},
		},
		Run: runAssessControl,
	})

	registry.Register("grc", "assess", registry.Tool{
		Name:        "assess-family",
		Description: "Assess a NIST 800-171 control family by id prefix",
		Params: []registry.Param{
			{Name: "family", Description: "Family id (e.g. 3.1)", Required: true},
		},
		Run: runAssessFamily,
	})

	registry.Register("grc", "assess", registry.Tool{
		Name:        "gap-analysis",
		Description: "Produce a priority-bucketed compliance gap analysis",
		Params: []registry.Param{
			{Name: "format", Description: "Output format (json or summary)", Default: string(grc.FormatSummary)},
		},
		Run: runGapAnalysis,
	})
}

func runGenerateQuery(args map[string]string) (string, error) {
	resolver, err := templates.NewResolver()
	if err != nil {
		return "", err
	}

	overrides := map[string]string{}
	if timeframe := args["timeframe"]; timeframe != "" {
		overrides["timeframe"] = timeframe
	}

	var resolved *templates.ResolvedQuery
	switch {
	case args["template"] != "":
		resolved, err = resolver.ResolveTemplate(args["template"], overrides)
	case args["prompt"] != "":
		resolved, err = resolver.ResolvePrompt(args["prompt"], overrides)
	default:
		return "", fmt.Errorf("either prompt or template is required")
	}
	if err != nil {
		return "", err
	}

	return resolved.Query, nil
}

func runListTemplates(args map[string]string) (string, error) {
	loader, err := templates.NewTemplateLoader()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, id := range loader.IDs() {
		tmpl, _ := loader.GetTemplate(id)
		fmt.Fprintf(&b, "%s [%s]: %s\n", tmpl.ID, tmpl.Category, tmpl.Description)
	}
	return b.String(), nil
}

func runAssessment(args map[string]string) (string, error) {
	format, err := grc.ParseFormat(argOrDefault(args, "format", string(grc.FormatSummary)))
	if err != nil {
		return "", err
	}
	detailed, _ := strconv.ParseBool(args["detailed"])

	reg, err := grc.NewRegistry()
	if err != nil {
		return "", err
	}

	return grc.RenderComplianceReport(reg.ComplianceReport(detailed), format)
}

func runAssessControl(args map[string]string) (string, error) {
	reg, err := grc.NewRegistry()
	if err != nil {
		return "", err
	}

	control, err := reg.GetControl(args["control"])
	if err != nil {
		return "", err
	}

	return grc.RenderControl(control, grc.FormatJSON, true)
}

func runAssessFamily(args map[string]string) (string, error) {
	reg, err := grc.NewRegistry()
	if err != nil {
		return "", err
	}

	report, err := reg.FamilyReport(args["family"], true)
	if err != nil {
		return "", err
	}

	return grc.RenderFamilyReport(report, grc.FormatJSON, true)
}

func runGapAnalysis(args map[string]string) (string, error) {
	format, err := grc.ParseFormat(argOrDefault(args, "format", string(grc.FormatSummary)))
	if err != nil {
		return "", err
	}

	reg, err := grc.NewRegistry()
	if err != nil {
		return "", err
	}

	return grc.RenderGapReport(reg.GapAnalysis(), format)
}

func argOrDefault(args map[string]string, key, fallback string) string {
	if value := args[key]; value != "" {
		return value
	}
	return fallback
}
