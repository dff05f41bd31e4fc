package service

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ludo-technologies/phishscan/domain"
	"gopkg.in/yaml.v3"
)

func sampleResponse() *domain.AnalyzeResponse {
	return &domain.AnalyzeResponse{
		Results: []domain.URLCheckResult{
			{
				URL:    "http://paypal-secure-login.com",
				Status: domain.RiskStatusDangerous,
				Score:  60,
				Reasons: []string{
					"High risk of phishing",
					"Domain contains suspicious keywords",
				},
			},
			{
				URL:     "https://www.google.com",
				Status:  domain.RiskStatusSafe,
				Score:   0,
				Reasons: []string{"No obvious red flags detected"},
			},
		},
		Summary: domain.AnalyzeSummary{
			TotalURLs:      2,
			DangerousCount: 1,
			SafeCount:      1,
			AverageScore:   30,
			MaxScore:       60,
		},
		GeneratedAt: "2026-08-29T00:00:00Z",
	}
}

func TestOutputFormatter_Text(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	for _, want := range []string{
		"URL Risk Analysis",
		"DANGEROUS",
		"http://paypal-secure-login.com",
		"URLs analyzed: 2",
		"Highest score: 60",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text output missing %q:\n%s", want, out)
		}
	}

	// Reasons are only shown with details enabled
	if strings.Contains(out, "Domain contains suspicious keywords") {
		t.Error("Text output should not include reasons without details")
	}
}

func TestOutputFormatter_TextWithDetails(t *testing.T) {
	formatter := NewOutputFormatterWithDetails(true)

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "Domain contains suspicious keywords") {
		t.Errorf("Detailed text output should include reasons:\n%s", out)
	}
}

func TestOutputFormatter_JSON(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded AnalyzeResponseJSON
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON output did not parse: %v", err)
	}
	if len(decoded.Results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(decoded.Results))
	}
	if decoded.Results[0].Score != 60 {
		t.Errorf("Expected score 60, got %d", decoded.Results[0].Score)
	}
	if decoded.Summary.TotalURLs != 2 {
		t.Errorf("Expected 2 total URLs, got %d", decoded.Summary.TotalURLs)
	}
}

func TestOutputFormatter_YAML(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatYAML)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded AnalyzeResponseJSON
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("YAML output did not parse: %v", err)
	}
	if decoded.Summary.MaxScore != 60 {
		t.Errorf("Expected max score 60, got %d", decoded.Summary.MaxScore)
	}
}

func TestOutputFormatter_CSV(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatCSV)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("CSV output did not parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "url" {
		t.Errorf("Expected url header, got %q", records[0][0])
	}
	if records[1][2] != "60" {
		t.Errorf("Expected score column 60, got %q", records[1][2])
	}
	if !strings.Contains(records[1][3], "; ") {
		t.Errorf("Expected joined reasons, got %q", records[1][3])
	}
}

func TestOutputFormatter_UnsupportedFormat(t *testing.T) {
	formatter := NewOutputFormatter()

	_, err := formatter.Format(sampleResponse(), domain.OutputFormat("xml"))
	if err == nil {
		t.Error("Expected error for unsupported format")
	}
}
