package grc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ControlStatus is the implementation status of a NIST 800-171
// control. The set is closed; any other string is rejected at load
// time.
type ControlStatus string

const (
	StatusCompliant          ControlStatus = "compliant"
	StatusPartiallyCompliant ControlStatus = "partially_compliant"
	StatusNonCompliant       ControlStatus = "non_compliant"
	StatusNotApplicable      ControlStatus = "not_applicable"
	StatusNotAssessed        ControlStatus = "not_assessed"
)

func (s ControlStatus) Valid() bool {
	switch s {
	case StatusCompliant, StatusPartiallyCompliant, StatusNonCompliant, StatusNotApplicable, StatusNotAssessed:
		return true
	}
	return false
}

func (s *ControlStatus) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	status := ControlStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("invalid control status %q", raw)
	}
	*s = status
	return nil
}

// ControlFamily is a NIST 800-171 control family id, the numeric
// prefix shared by the family's control ids.
type ControlFamily string

const (
	AccessControl                  ControlFamily = "3.1"
	AwarenessTraining              ControlFamily = "3.2"
	AuditAccountability            ControlFamily = "3.3"
	ConfigurationManagement        ControlFamily = "3.4"
	IdentificationAuthentication   ControlFamily = "3.5"
	IncidentResponse               ControlFamily = "3.6"
	Maintenance                    ControlFamily = "3.7"
	MediaProtection                ControlFamily = "3.8"
	PersonnelSecurity              ControlFamily = "3.9"
	PhysicalProtection             ControlFamily = "3.10"
	RiskAssessment                 ControlFamily = "3.11"
	SecurityAssessment             ControlFamily = "3.12"
	SystemCommunicationsProtection ControlFamily = "3.13"
	SystemIntegrity                ControlFamily = "3.14"
)

var familyNames = map[ControlFamily]string{
	AccessControl:                  "Access Control",
	AwarenessTraining:              "Awareness and Training",
	AuditAccountability:            "Audit and Accountability",
	ConfigurationManagement:        "Configuration Management",
	IdentificationAuthentication:   "Identification and Authentication",
	IncidentResponse:               "Incident Response",
	Maintenance:                    "Maintenance",
	MediaProtection:                "Media Protection",
	PersonnelSecurity:              "Personnel Security",
	PhysicalProtection:             "Physical Protection",
	RiskAssessment:                 "Risk Assessment",
	SecurityAssessment:             "Security Assessment",
	SystemCommunicationsProtection: "System and Communications Protection",
	SystemIntegrity:                "System and Information Integrity",
}

// Families returns all family ids in standard publication order.
func Families() []ControlFamily {
	return []ControlFamily{
		AccessControl, AwarenessTraining, AuditAccountability,
		ConfigurationManagement, IdentificationAuthentication,
		IncidentResponse, Maintenance, MediaProtection,
		PersonnelSecurity, PhysicalProtection, RiskAssessment,
		SecurityAssessment, SystemCommunicationsProtection,
		SystemIntegrity,
	}
}

func (f ControlFamily) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

func (f ControlFamily) Name() string {
	return familyNames[f]
}

// Control is one NIST 800-171 control's fixed assessment record.
type Control struct {
	ID               string        `yaml:"id" json:"id"`
	Family           ControlFamily `yaml:"family" json:"family"`
	Title            string        `yaml:"title" json:"title"`
	Description      string        `yaml:"description" json:"description"`
	AzureMappings    []string      `yaml:"azure_mappings" json:"azureMappings"`
	AssessmentMethod string        `yaml:"assessment_method" json:"assessmentMethod"`
	Status           ControlStatus `yaml:"status" json:"status"`
	Findings         []string      `yaml:"findings" json:"findings"`
	Recommendations  []string      `yaml:"recommendations" json:"recommendations"`
}

// StatusCount is one status's share of an assessment.
type StatusCount struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary aggregates control counts per status over the registry or a
// family-filtered subset. A zero TotalControls summary means the
// filter matched nothing.
type Summary struct {
	Family             ControlFamily `json:"family,omitempty"`
	TotalControls      int           `json:"totalControls"`
	Compliant          StatusCount   `json:"compliant"`
	PartiallyCompliant StatusCount   `json:"partiallyCompliant"`
	NonCompliant       StatusCount   `json:"nonCompliant"`
	NotApplicable      StatusCount   `json:"notApplicable"`
	NotAssessed        StatusCount   `json:"notAssessed"`
}

// GapEntry is one control whose status indicates incomplete
// implementation.
type GapEntry struct {
	ControlID       string        `json:"controlId"`
	Title           string        `json:"title"`
	Status          ControlStatus `json:"status"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// GapReport buckets gaps by remediation priority. The bucket is a
// pure function of status: non-compliant is high, partially-compliant
// is medium. Registry order is preserved within each bucket.
type GapReport struct {
	High   []GapEntry `json:"high"`
	Medium []GapEntry `json:"medium"`
}
