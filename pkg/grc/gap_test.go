package grc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapAnalysisBuckets(t *testing.T) {
	registry := newRegistry(t)

	report := registry.GapAnalysis()

	require.Len(t, report.High, 1)
	assert.Equal(t, "3.4.1", report.High[0].ControlID)
	assert.Equal(t, StatusNonCompliant, report.High[0].Status)

	require.Len(t, report.Medium, 1)
	assert.Equal(t, "3.1.2", report.Medium[0].ControlID)
	assert.Equal(t, StatusPartiallyCompliant, report.Medium[0].Status)
}

func TestGapAnalysisCoversExactlyTheGappedControls(t *testing.T) {
	registry := newRegistry(t)

	report := registry.GapAnalysis()

	gapped := 0
	for _, control := range registry.Controls() {
		if control.Status == StatusNonCompliant || control.Status == StatusPartiallyCompliant {
			gapped++
		}
	}
	assert.Equal(t, gapped, len(report.High)+len(report.Medium))

	inBuckets := make(map[string]bool)
	for _, entry := range append(report.High, report.Medium...) {
		inBuckets[entry.ControlID] = true
	}
	for _, control := range registry.Controls() {
		switch control.Status {
		case StatusNonCompliant, StatusPartiallyCompliant:
			assert.True(t, inBuckets[control.ID], "control %s missing from buckets", control.ID)
		default:
			assert.False(t, inBuckets[control.ID], "control %s must not appear in any bucket", control.ID)
		}
	}
}

func TestGapReportMarkdownTable(t *testing.T) {
	registry := newRegistry(t)

	table := registry.GapAnalysis().MarkdownTable()
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "high", table.Rows[0][0])
	assert.Equal(t, "3.4.1", table.Rows[0][1])
	assert.Equal(t, "medium", table.Rows[1][0])
}
