package grc

import (
	"math"

	u "github.com/mpvl/unique"
)

// AssessAll summarizes the full registry.
func (r *Registry) AssessAll() Summary {
	return summarize(r.controls, "")
}

// AssessFamily summarizes one control family. An unknown family id is
// an error; a known family with no controls in the table yields a
// zero-total summary.
func (r *Registry) AssessFamily(familyID string) (Summary, error) {
	controls, err := r.FamilyControls(familyID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(controls, ControlFamily(familyID)), nil
}

func summarize(controls []*Control, family ControlFamily) Summary {
	summary := Summary{
		Family:        family,
		TotalControls: len(controls),
	}

	counts := make(map[ControlStatus]int)
	for _, control := range controls {
		counts[control.Status]++
	}

	summary.Compliant = statusCount(counts[StatusCompliant], summary.TotalControls)
	summary.PartiallyCompliant = statusCount(counts[StatusPartiallyCompliant], summary.TotalControls)
	summary.NonCompliant = statusCount(counts[StatusNonCompliant], summary.TotalControls)
	summary.NotApplicable = statusCount(counts[StatusNotApplicable], summary.TotalControls)
	summary.NotAssessed = statusCount(counts[StatusNotAssessed], summary.TotalControls)

	return summary
}

func statusCount(count, total int) StatusCount {
	sc := StatusCount{Count: count}
	if total > 0 {
		// One decimal place
		sc.Percent = math.Round(float64(count)/float64(total)*1000) / 10
	}
	return sc
}

// PlatformServices returns the distinct Azure services mapped to a
// family's controls, sorted and deduplicated.
func (r *Registry) PlatformServices(familyID string) ([]string, error) {
	controls, err := r.FamilyControls(familyID)
	if err != nil {
		return nil, err
	}

	var services []string
	for _, control := range controls {
		services = append(services, control.AzureMappings...)
	}

	s := u.StringSlice{P: &services}
	u.Sort(s)
	u.Strings(s.P)
	return services, nil
}
