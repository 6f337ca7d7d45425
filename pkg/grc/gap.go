package grc

import "github.com/haystacksec/kustodian/pkg/types"

// GapAnalysis partitions gapped controls into priority buckets.
// Non-compliant controls are high priority, partially-compliant
// medium. The partition is stable: registry order is preserved within
// each bucket.
func (r *Registry) GapAnalysis() GapReport {
	var report GapReport

	for _, control := range r.controls {
		entry := GapEntry{
			ControlID:       control.ID,
			Title:           control.Title,
			Status:          control.Status,
			Recommendations: control.Recommendations,
		}

		switch control.Status {
		case StatusNonCompliant:
			report.High = append(report.High, entry)
		case StatusPartiallyCompliant:
			report.Medium = append(report.Medium, entry)
		}
	}

	return report
}

// MarkdownTable renders the gap report as a table for the markdown
// output provider.
func (g GapReport) MarkdownTable() types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "NIST 800-171 Gap Analysis",
		Headers:      []string{"Priority", "Control", "Title", "Status"},
	}

	for _, entry := range g.High {
		table.Rows = append(table.Rows, []string{"high", entry.ControlID, entry.Title, string(entry.Status)})
	}
	for _, entry := range g.Medium {
		table.Rows = append(table.Rows, []string{"medium", entry.ControlID, entry.Title, string(entry.Status)})
	}

	return table
}
