package grc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the output representation of a rendered report.
type Format string

const (
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatSummary:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q (valid formats: json, summary)", s)
}

// ControlReport is one control's slice of a compliance report.
// Findings and recommendations are present only in detailed reports.
type ControlReport struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Family          ControlFamily `json:"family"`
	Status          ControlStatus `json:"status"`
	AzureMappings   []string      `json:"azureMappings"`
	Findings        []string      `json:"findings,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// ComplianceReport is the full assessment document. Controls appear
// in registry order; rendering it is deterministic for a fixed
// registry.
type ComplianceReport struct {
	TotalControls int             `json:"totalControls"`
	Summary       Summary         `json:"summary"`
	Controls      []ControlReport `json:"controls"`
}

// FamilyReport is the assessment document for a single family.
type FamilyReport struct {
	Family     ControlFamily   `json:"family"`
	FamilyName string          `json:"familyName"`
	Summary    Summary         `json:"summary"`
	Controls   []ControlReport `json:"controls"`
}

// ComplianceReport builds the full assessment document.
func (r *Registry) ComplianceReport(detailed bool) ComplianceReport {
	report := ComplianceReport{
		TotalControls: len(r.controls),
		Summary:       r.AssessAll(),
		Controls:      controlReports(r.controls, detailed),
	}
	return report
}

// FamilyReport builds the assessment document for one family.
func (r *Registry) FamilyReport(familyID string, detailed bool) (FamilyReport, error) {
	controls, err := r.FamilyControls(familyID)
	if err != nil {
		return FamilyReport{}, err
	}

	family := ControlFamily(familyID)
	return FamilyReport{
		Family:     family,
		FamilyName: family.Name(),
		Summary:    summarize(controls, family),
		Controls:   controlReports(controls, detailed),
	}, nil
}

func controlReports(controls []*Control, detailed bool) []ControlReport {
	reports := make([]ControlReport, 0, len(controls))
	for _, control := range controls {
		report := ControlReport{
			ID:            control.ID,
			Title:         control.Title,
			Family:        control.Family,
			Status:        control.Status,
			AzureMappings: control.AzureMappings,
		}
		if detailed {
			report.Findings = control.Findings
			report.Recommendations = control.Recommendations
		}
		reports = append(reports, report)
	}
	return reports
}

// RenderComplianceReport renders the full assessment document in the
// requested format.
func RenderComplianceReport(report ComplianceReport, format Format) (string, error) {
	if format == FormatJSON {
		return renderJSON(report)
	}

	var b strings.Builder
	b.WriteString("NIST 800-171 Compliance Assessment Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Total Controls Assessed: %d\n\n", report.TotalControls)
	b.WriteString(renderSummaryText(report.Summary))

	b.WriteString("\nHigh Priority Remediation Items:\n")
	remediation := false
	for _, control := range report.Controls {
		if control.Status == StatusNonCompliant {
			fmt.Fprintf(&b, "- %s: %s\n", control.ID, control.Title)
			remediation = true
		}
	}
	if !remediation {
		b.WriteString("- None\n")
	}

	return b.String(), nil
}

// RenderFamilyReport renders a single family's assessment document.
func RenderFamilyReport(report FamilyReport, format Format, detailed bool) (string, error) {
	if format == FormatJSON {
		return renderJSON(report)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Control Family %s (%s) Assessment Results:\n", report.Family, report.FamilyName)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString(renderSummaryText(report.Summary))

	for _, control := range report.Controls {
		fmt.Fprintf(&b, "\n%s: %s\n", control.ID, control.Title)
		fmt.Fprintf(&b, "Status: %s\n", control.Status)
		if detailed {
			fmt.Fprintf(&b, "Findings: %s\n", joinOrNone(control.Findings))
			fmt.Fprintf(&b, "Recommendations: %s\n", joinOrNone(control.Recommendations))
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	return b.String(), nil
}

// RenderControl renders a single control's assessment state.
func RenderControl(control *Control, format Format, detailed bool) (string, error) {
	if format == FormatJSON {
		reports := controlReports([]*Control{control}, detailed)
		return renderJSON(reports[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Control %s: %s\n", control.ID, control.Title)
	fmt.Fprintf(&b, "Family: %s (%s)\n", control.Family, control.Family.Name())
	fmt.Fprintf(&b, "Status: %s\n", control.Status)
	if detailed {
		fmt.Fprintf(&b, "Assessment Method: %s\n", control.AssessmentMethod)
		fmt.Fprintf(&b, "Azure Mappings: %s\n", joinOrNone(control.AzureMappings))
		fmt.Fprintf(&b, "Findings: %s\n", joinOrNone(control.Findings))
		fmt.Fprintf(&b, "Recommendations: %s\n", joinOrNone(control.Recommendations))
	}

	return b.String(), nil
}

// RenderGapReport renders the gap analysis in the requested format.
func RenderGapReport(report GapReport, format Format) (string, error) {
	if format == FormatJSON {
		return renderJSON(report)
	}

	var b strings.Builder
	b.WriteString("NIST 800-171 Gap Analysis Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")

	writeBucket := func(name string, entries []GapEntry) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s Priority Gaps:\n", name)
		for _, entry := range entries {
			fmt.Fprintf(&b, "  - %s: %s\n", entry.ControlID, entry.Title)
		}
	}
	writeBucket("High", report.High)
	writeBucket("Medium", report.Medium)

	if len(report.High) == 0 && len(report.Medium) == 0 {
		b.WriteString("\nNo gaps identified.\n")
	}

	return b.String(), nil
}

func renderSummaryText(summary Summary) string {
	var b strings.Builder
	b.WriteString("Compliance Summary:\n")
	fmt.Fprintf(&b, "- Compliant: %d (%.1f%%)\n", summary.Compliant.Count, summary.Compliant.Percent)
	fmt.Fprintf(&b, "- Partially Compliant: %d (%.1f%%)\n", summary.PartiallyCompliant.Count, summary.PartiallyCompliant.Percent)
	fmt.Fprintf(&b, "- Non-Compliant: %d (%.1f%%)\n", summary.NonCompliant.Count, summary.NonCompliant.Percent)
	fmt.Fprintf(&b, "- Not Applicable: %d (%.1f%%)\n", summary.NotApplicable.Count, summary.NotApplicable.Percent)
	fmt.Fprintf(&b, "- Not Assessed: %d (%.1f%%)\n", summary.NotAssessed.Count, summary.NotAssessed.Percent)
	return b.String()
}

func renderJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
