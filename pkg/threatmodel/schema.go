// Package threatmodel defines the strict analysis result schema and the
// normalization rules applied to loosely-typed LLM output.
package threatmodel

import "encoding/json"

// RiskLevel is the aggregate severity bucket derived from the risk score.
type RiskLevel string

// Risk levels, from least to most severe.
const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskLevelFromScore maps a numeric risk score (0-10) to a RiskLevel.
// Thresholds: LOW score < 3; MEDIUM score < 6; HIGH score < 8; CRITICAL otherwise.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score < 3:
		return RiskLow
	case score < 6:
		return RiskMedium
	case score < 8:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Component is an architecture element detected in the diagram.
type Component struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Connection is a data flow or dependency between two components.
// The raw LLM key "from" maps to FromID at the schema boundary.
type Connection struct {
	FromID      string `json:"from_id"`
	ToID        string `json:"to_id"`
	Protocol    string `json:"protocol,omitempty"`
	Description string `json:"description,omitempty"`
	Encrypted   *bool  `json:"encrypted,omitempty"`
}

// DreadDetails holds the five DREAD sub-scores, each in [0,10].
type DreadDetails struct {
	Damage          float64 `json:"damage"`
	Reproducibility float64 `json:"reproducibility"`
	Exploitability  float64 `json:"exploitability"`
	AffectedUsers   float64 `json:"affected_users"`
	Discoverability float64 `json:"discoverability"`
}

// Score returns the arithmetic mean of the five sub-scores.
func (d DreadDetails) Score() float64 {
	return (d.Damage + d.Reproducibility + d.Exploitability + d.AffectedUsers + d.Discoverability) / 5
}

// Threat is a single STRIDE-categorized threat with optional DREAD scoring.
// DreadScore stays nil when the scoring stage did not cover the threat.
type Threat struct {
	ComponentID  string        `json:"component_id"`
	ThreatType   string        `json:"threat_type"`
	Description  string        `json:"description"`
	Mitigation   string        `json:"mitigation"`
	DreadScore   *float64      `json:"dread_score,omitempty"`
	DreadDetails *DreadDetails `json:"dread_details,omitempty"`
}

// AnalysisResult is the full output of one pipeline run.
type AnalysisResult struct {
	ModelUsed   string       `json:"model_used"`
	Components  []Component  `json:"components"`
	Connections []Connection `json:"connections"`
	Threats     []Threat     `json:"threats"`

	// RiskScore is in [0,10], rounded to 2 decimals.
	RiskScore float64   `json:"risk_score"`
	RiskLevel RiskLevel `json:"risk_level"`

	// ProcessingTime is end-to-end pipeline wall-clock seconds.
	ProcessingTime float64 `json:"processing_time"`
}

// AsMap converts the result to a generic map, the form it is persisted in.
func (r AnalysisResult) AsMap() (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarshalJSON derives threat_count and component_count from list lengths
// at serialization time.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type alias AnalysisResult
	return json.Marshal(struct {
		alias
		ThreatCount    int `json:"threat_count"`
		ComponentCount int `json:"component_count"`
	}{
		alias:          alias(r),
		ThreatCount:    len(r.Threats),
		ComponentCount: len(r.Components),
	})
}
