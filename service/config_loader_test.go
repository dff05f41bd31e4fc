package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/phishscan/domain"
)

func TestConfigurationLoader_LoadDefaultConfig(t *testing.T) {
	loader := NewConfigurationLoader()

	req := loader.LoadDefaultConfig()
	if req == nil {
		t.Fatal("LoadDefaultConfig returned nil")
	}
	if req.OutputFormat != domain.OutputFormatText {
		t.Errorf("Expected text format default, got %s", req.OutputFormat)
	}
	if req.SortBy != domain.SortByScore {
		t.Errorf("Expected score sort default, got %s", req.SortBy)
	}
}

func TestConfigurationLoader_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phishscan.yaml")
	content := `output:
  format: json
  show_details: true
  min_score: 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewConfigurationLoader()
	req, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if req.OutputFormat != domain.OutputFormatJSON {
		t.Errorf("Expected json format, got %s", req.OutputFormat)
	}
	if !req.ShowDetails {
		t.Error("Expected show_details true")
	}
	if req.MinScore != 10 {
		t.Errorf("Expected min score 10, got %d", req.MinScore)
	}
}

func TestConfigurationLoader_LoadConfigMissingFile(t *testing.T) {
	loader := NewConfigurationLoader()

	_, err := loader.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestConfigurationLoader_MergeConfig(t *testing.T) {
	loader := NewConfigurationLoader()

	base := loader.LoadDefaultConfig()
	override := &domain.AnalyzeRequest{
		URLs:         []string{"https://example.com"},
		OutputFormat: domain.OutputFormatCSV,
		ShowDetails:  true,
		MinScore:     25,
		SortBy:       domain.SortByURL,
	}

	merged := loader.MergeConfig(base, override)

	if len(merged.URLs) != 1 {
		t.Errorf("Expected URLs from override, got %v", merged.URLs)
	}
	if merged.OutputFormat != domain.OutputFormatCSV {
		t.Errorf("Expected csv format, got %s", merged.OutputFormat)
	}
	if !merged.ShowDetails {
		t.Error("Expected details from override")
	}
	if merged.MinScore != 25 {
		t.Errorf("Expected min score 25, got %d", merged.MinScore)
	}
	if merged.SortBy != domain.SortByURL {
		t.Errorf("Expected url sort, got %s", merged.SortBy)
	}
}

func TestConfigurationLoader_MergeConfigKeepsBase(t *testing.T) {
	loader := NewConfigurationLoader()

	base := &domain.AnalyzeRequest{
		OutputFormat: domain.OutputFormatYAML,
		MinScore:     5,
		SortBy:       domain.SortByStatus,
	}
	merged := loader.MergeConfig(base, &domain.AnalyzeRequest{})

	if merged.OutputFormat != domain.OutputFormatYAML {
		t.Errorf("Zero override should keep base format, got %s", merged.OutputFormat)
	}
	if merged.MinScore != 5 {
		t.Errorf("Zero override should keep base min score, got %d", merged.MinScore)
	}
	if merged.SortBy != domain.SortByStatus {
		t.Errorf("Zero override should keep base sort, got %s", merged.SortBy)
	}
}
