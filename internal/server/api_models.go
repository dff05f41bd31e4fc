package server

import "github.com/ludo-technologies/phishscan/domain"

// AnalyzeURLRequest is the payload for single-URL analysis.
type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// AnalyzeURLResponse returns the score for one URL plus its stored report id.
type AnalyzeURLResponse struct {
	ReportID string                `json:"report_id,omitempty"`
	Result   domain.URLCheckResult `json:"result"`
}

// AnalyzeBatchRequest is the payload for batch analysis.
type AnalyzeBatchRequest struct {
	URLs []string `json:"urls"`
}

// AnalyzeBatchResponse returns scored results with aggregate statistics.
type AnalyzeBatchResponse struct {
	ReportIDs []string                `json:"report_ids,omitempty"`
	Results   []domain.URLCheckResult `json:"results"`
	Summary   domain.AnalyzeSummary   `json:"summary"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
