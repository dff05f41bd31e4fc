package service

import (
	"context"
	"testing"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/config"
)

func TestRiskService_Analyze(t *testing.T) {
	svc := NewRiskService(&config.DefaultConfig().Risk)

	req := domain.AnalyzeRequest{
		URLs: []string{
			"https://www.google.com",
			"http://192.168.1.1/login",
			"https://bit.ly/3xyz",
		},
		SortBy: domain.SortByScore,
	}

	resp, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(resp.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(resp.Results))
	}

	// Sorted by score descending
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i-1].Score < resp.Results[i].Score {
			t.Errorf("Results not sorted by score: %d before %d",
				resp.Results[i-1].Score, resp.Results[i].Score)
		}
	}

	if resp.Summary.TotalURLs != 3 {
		t.Errorf("Expected 3 total URLs, got %d", resp.Summary.TotalURLs)
	}
	if resp.Summary.DangerousCount != 1 {
		t.Errorf("Expected 1 dangerous, got %d", resp.Summary.DangerousCount)
	}
	if resp.Summary.SafeCount != 1 {
		t.Errorf("Expected 1 safe, got %d", resp.Summary.SafeCount)
	}
	if resp.Summary.MaxScore != 70 {
		t.Errorf("Expected max score 70, got %d", resp.Summary.MaxScore)
	}
}

func TestRiskService_AnalyzeEmptyInput(t *testing.T) {
	svc := NewRiskService(&config.DefaultConfig().Risk)

	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{})
	if err == nil {
		t.Fatal("Analyze should reject an empty URL list")
	}

	domainErr, ok := err.(domain.DomainError)
	if !ok {
		t.Fatalf("Expected DomainError, got %T", err)
	}
	if domainErr.Code != domain.ErrCodeInvalidInput {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeInvalidInput, domainErr.Code)
	}
}

func TestRiskService_AnalyzeCancelled(t *testing.T) {
	svc := NewRiskService(&config.DefaultConfig().Risk)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, domain.AnalyzeRequest{URLs: []string{"https://example.com"}})
	if err == nil {
		t.Error("Analyze should fail when context is cancelled")
	}
}

func TestRiskService_MinScoreFilter(t *testing.T) {
	svc := NewRiskService(&config.DefaultConfig().Risk)

	req := domain.AnalyzeRequest{
		URLs: []string{
			"https://www.google.com",   // 0
			"http://192.168.1.1/login", // 70
		},
		MinScore: 50,
	}

	resp, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result after filtering, got %d", len(resp.Results))
	}
	// Summary still covers the full batch
	if resp.Summary.TotalURLs != 2 {
		t.Errorf("Summary should cover all URLs, got %d", resp.Summary.TotalURLs)
	}
}

func TestRiskService_SortByURL(t *testing.T) {
	svc := NewRiskService(&config.DefaultConfig().Risk)

	req := domain.AnalyzeRequest{
		URLs:   []string{"https://zzz.example.com", "https://aaa.example.com"},
		SortBy: domain.SortByURL,
	}

	resp, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if resp.Results[0].URL != "https://aaa.example.com" {
		t.Errorf("Expected URL sort, got %s first", resp.Results[0].URL)
	}
}

func TestRiskService_SortByStatus(t *testing.T) {
	svc := NewRiskService(&config.DefaultConfig().Risk)

	req := domain.AnalyzeRequest{
		URLs: []string{
			"https://www.google.com",   // safe
			"http://192.168.1.1/login", // dangerous
			"https://bit.ly/3xyz",      // suspicious
		},
		SortBy: domain.SortByStatus,
	}

	resp, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	want := []domain.RiskStatus{
		domain.RiskStatusDangerous,
		domain.RiskStatusSuspicious,
		domain.RiskStatusSafe,
	}
	for i, status := range want {
		if resp.Results[i].Status != status {
			t.Errorf("Position %d: expected %s, got %s", i, status, resp.Results[i].Status)
		}
	}
}

func TestRiskService_ParallelBatchScoring(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Performance.MaxGoroutines = 4

	svc := NewRiskServiceFromConfig(cfg)

	urls := []string{
		"https://www.google.com",
		"http://192.168.1.1/login",
		"https://bit.ly/3xyz",
		"http://paypal-secure-login.com/verify",
	}

	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		URLs:   urls,
		SortBy: domain.SortByURL,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(resp.Results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(resp.Results))
	}

	// Parallel scoring must match the sequential scorer URL for URL
	sequential := NewRiskService(&cfg.Risk)
	for _, r := range resp.Results {
		want := sequential.AnalyzeURL(context.Background(), r.URL)
		if r.Score != want.Score || r.Status != want.Status {
			t.Errorf("%s: parallel got %d/%s, sequential got %d/%s",
				r.URL, r.Score, r.Status, want.Score, want.Status)
		}
	}
	if resp.Summary.TotalURLs != 4 {
		t.Errorf("Expected summary over 4 URLs, got %d", resp.Summary.TotalURLs)
	}
}

func TestRiskService_SequentialWhenSingleGoroutine(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Performance.MaxGoroutines = 1

	svc := NewRiskServiceFromConfig(cfg)
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		URLs: []string{"https://example.com", "https://bit.ly/x"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(resp.Results))
	}
}

func TestRiskService_ConfigExtensions(t *testing.T) {
	cfg := config.DefaultConfig().Risk
	cfg.ExtraKeywords = []string{"billing"}

	svc := NewRiskService(&cfg)
	result := svc.AnalyzeURL(context.Background(), "https://billing.badsite.io")

	if result.Score == 0 {
		t.Error("Extra keyword from config should affect scoring")
	}
}
