// Package models holds the request and response shapes of the intake API.
package models

import (
	"time"

	"github.com/stridesec/threatmodel/ent"
)

// ListParams are the supported list filters. CreatedFrom/CreatedTo are
// calendar dates; the service expands them to inclusive whole-day UTC
// bounds.
type ListParams struct {
	Code        string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	Size        int
}

// AnalysisSummary is one row of the list response. Risk fields are pulled
// from the stored result and stay null until the analysis is DONE.
type AnalysisSummary struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ImageURL    string    `json:"image_url"`
	RiskLevel   *string   `json:"risk_level"`
	RiskScore   *float64  `json:"risk_score"`
	ThreatCount *int      `json:"threat_count"`
}

// AnalysisDetail is the full single-analysis response.
type AnalysisDetail struct {
	ID             string         `json:"id"`
	Code           string         `json:"code"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	StartedAt      *time.Time     `json:"started_at"`
	FinishedAt     *time.Time     `json:"finished_at"`
	ImageURL       string         `json:"image_url"`
	ProcessingLogs string         `json:"processing_logs"`
	ErrorMessage   *string        `json:"error_message"`
	Result         map[string]any `json:"result"`
}

// AnalysisCreateResponse is returned from a successful upload.
type AnalysisCreateResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ImageURL  string    `json:"image_url"`
}

// AnalysisListResponse is the paginated list envelope.
type AnalysisListResponse struct {
	Items []AnalysisSummary `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Pages int               `json:"pages"`
}

func imageURL(id string) string {
	return "/api/v1/analyses/" + id + "/image"
}

// SummaryFromEnt projects a persisted analysis into a list row.
func SummaryFromEnt(a *ent.Analysis) AnalysisSummary {
	s := AnalysisSummary{
		ID:        a.ID,
		Code:      a.Code,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		ImageURL:  imageURL(a.ID),
	}
	if a.Result != nil {
		if level, ok := a.Result["risk_level"].(string); ok {
			s.RiskLevel = &level
		}
		if score, ok := a.Result["risk_score"].(float64); ok {
			s.RiskScore = &score
		}
		if threats, ok := a.Result["threats"].([]any); ok {
			count := len(threats)
			s.ThreatCount = &count
		}
	}
	return s
}

// DetailFromEnt projects a persisted analysis into the detail response.
func DetailFromEnt(a *ent.Analysis) AnalysisDetail {
	return AnalysisDetail{
		ID:             a.ID,
		Code:           a.Code,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		StartedAt:      a.StartedAt,
		FinishedAt:     a.FinishedAt,
		ImageURL:       imageURL(a.ID),
		ProcessingLogs: a.ProcessingLogs,
		ErrorMessage:   a.ErrorMessage,
		Result:         a.Result,
	}
}

// CreateResponseFromEnt projects a freshly created analysis.
func CreateResponseFromEnt(a *ent.Analysis) AnalysisCreateResponse {
	return AnalysisCreateResponse{
		ID:        a.ID,
		Code:      a.Code,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		ImageURL:  imageURL(a.ID),
	}
}
