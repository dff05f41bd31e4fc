package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/service"
)

func newTestUseCase(t *testing.T) *AnalyzeUseCase {
	t.Helper()

	uc, err := NewAnalyzeUseCaseBuilder().
		WithService(service.NewRiskService(nil)).
		WithCollector(service.NewURLCollector()).
		WithFormatter(service.NewOutputFormatter()).
		WithConfigLoader(service.NewConfigurationLoader()).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return uc
}

func TestAnalyzeUseCaseExecute(t *testing.T) {
	uc := newTestUseCase(t)

	var buf bytes.Buffer
	req := domain.AnalyzeRequest{
		URLs:         []string{"http://paypal-secure-login.com/verify"},
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &buf,
	}

	resp, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].Status != domain.RiskStatusDangerous {
		t.Errorf("Expected dangerous status, got %s", resp.Results[0].Status)
	}
	if !strings.Contains(buf.String(), "DANGEROUS") {
		t.Errorf("Report missing status line:\n%s", buf.String())
	}
	if resp.GeneratedAt == "" {
		t.Error("Expected GeneratedAt timestamp")
	}
}

func TestAnalyzeUseCaseExecuteNoURLs(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), domain.AnalyzeRequest{})
	if err == nil {
		t.Error("Execute should reject empty input")
	}
}

func TestAnalyzeUseCaseExecuteBadFormat(t *testing.T) {
	uc := newTestUseCase(t)

	req := domain.AnalyzeRequest{
		URLs:         []string{"https://example.com"},
		OutputFormat: domain.OutputFormat("xml"),
	}
	_, err := uc.Execute(context.Background(), req)
	if err == nil {
		t.Error("Execute should reject unsupported formats")
	}
}

func TestAnalyzeUseCaseAnalyze(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Analyze(context.Background(), domain.AnalyzeRequest{
		URLs: []string{"https://www.google.com", "https://bit.ly/x"},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Summary.TotalURLs != 2 {
		t.Errorf("Expected 2 URLs in summary, got %d", resp.Summary.TotalURLs)
	}
}

func TestAnalyzeUseCaseExecuteWithConfig(t *testing.T) {
	uc := newTestUseCase(t)

	var buf bytes.Buffer
	resp, err := uc.ExecuteWithConfig(context.Background(), domain.AnalyzeRequest{
		URLs:         []string{"https://example.com"},
		OutputFormat: domain.OutputFormatJSON,
		OutputWriter: &buf,
	})
	if err != nil {
		t.Fatalf("ExecuteWithConfig failed: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}
	if !strings.Contains(buf.String(), "\"results\"") {
		t.Errorf("Expected JSON output:\n%s", buf.String())
	}
}

func TestAnalyzeUseCaseSkippedLineWarning(t *testing.T) {
	uc := newTestUseCase(t)

	listPath := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://example.com\nhttps://example.com/" + strings.Repeat("a", 3000) + "\n"
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	resp, err := uc.Execute(context.Background(), domain.AnalyzeRequest{
		URLs:         []string{listPath},
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &buf,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}
	if len(resp.Warnings) != 1 {
		t.Fatalf("Skipped line should surface as a warning, got %v", resp.Warnings)
	}
	if !strings.Contains(buf.String(), "Warnings:") {
		t.Errorf("Text report missing warnings section:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "skipped") {
		t.Errorf("Text report missing skipped-line warning:\n%s", buf.String())
	}
}

func TestAnalyzeUseCaseBuilderValidation(t *testing.T) {
	_, err := NewAnalyzeUseCaseBuilder().Build()
	if err == nil {
		t.Error("Build should fail without a service")
	}

	_, err = NewAnalyzeUseCaseBuilder().
		WithService(service.NewRiskService(nil)).
		Build()
	if err == nil {
		t.Error("Build should fail without a collector")
	}
}
