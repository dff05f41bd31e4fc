package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// SortCriteria represents the criteria for sorting results
type SortCriteria string

const (
	SortByScore  SortCriteria = "score"
	SortByURL    SortCriteria = "url"
	SortByStatus SortCriteria = "status"
)

// RiskStatus is the three-level classification of a scored URL
type RiskStatus string

const (
	RiskStatusSafe       RiskStatus = "safe"
	RiskStatusSuspicious RiskStatus = "suspicious"
	RiskStatusDangerous  RiskStatus = "dangerous"
)

// Classification thresholds on the final clamped score
const (
	// SuspiciousThreshold is the lowest score classified as suspicious
	SuspiciousThreshold = 25

	// DangerousThreshold is the lowest score classified as dangerous
	DangerousThreshold = 50

	// MaxScore is the clamp ceiling for accumulated rule weights
	MaxScore = 100
)

// StatusForScore maps a clamped score to its risk status.
// The mapping is total: every integer lands in exactly one band.
func StatusForScore(score int) RiskStatus {
	switch {
	case score >= DangerousThreshold:
		return RiskStatusDangerous
	case score >= SuspiciousThreshold:
		return RiskStatusSuspicious
	default:
		return RiskStatusSafe
	}
}

// URLCheckResult is the outcome of scoring a single URL
type URLCheckResult struct {
	// URL is the raw input string as supplied by the caller
	URL string `json:"url" yaml:"url"`

	// Status is derived deterministically from Score
	Status RiskStatus `json:"status" yaml:"status"`

	// Score is the clamped sum of triggered rule weights, 0..100
	Score int `json:"score" yaml:"score"`

	// Reasons lists human-readable explanations in the order rules fired,
	// with a classification summary prepended. Never empty.
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// AnalyzeRequest represents a request for URL risk analysis
type AnalyzeRequest struct {
	// URLs to score, already expanded from any list files
	URLs []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool

	// Filtering and sorting
	MinScore int
	SortBy   SortCriteria

	// Configuration
	ConfigPath string

	// Input collection options (used by collectors, carried for config merge)
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
}

// AnalyzeSummary provides aggregate statistics over a batch of results
type AnalyzeSummary struct {
	TotalURLs       int     `json:"total_urls" yaml:"total_urls"`
	SafeCount       int     `json:"safe_count" yaml:"safe_count"`
	SuspiciousCount int     `json:"suspicious_count" yaml:"suspicious_count"`
	DangerousCount  int     `json:"dangerous_count" yaml:"dangerous_count"`
	AverageScore    float64 `json:"average_score" yaml:"average_score"`
	MaxScore        int     `json:"max_score" yaml:"max_score"`
}

// AnalyzeResponse represents the complete analysis result for a batch
type AnalyzeResponse struct {
	Results []URLCheckResult `json:"results" yaml:"results"`
	Summary AnalyzeSummary   `json:"summary" yaml:"summary"`

	// Warnings and issues
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// RiskService defines the core business logic for URL risk analysis
type RiskService interface {
	// Analyze scores every URL in the request and aggregates the results
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// AnalyzeURL scores a single URL
	AnalyzeURL(ctx context.Context, rawURL string) URLCheckResult
}

// URLCollector defines the interface for expanding inputs into URLs.
// Arguments may be literal URLs, list files, or directories of list files.
// Lines skipped during collection are reported as warnings.
type URLCollector interface {
	CollectURLs(paths []string, recursive bool, includePatterns, excludePatterns []string) (urls []string, warnings []string, err error)
	IsListFile(path string) bool
}

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	// Format formats the analysis response according to the specified format
	Format(response *AnalyzeResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *AnalyzeResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*AnalyzeRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *AnalyzeRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *AnalyzeRequest, override *AnalyzeRequest) *AnalyzeRequest
}
