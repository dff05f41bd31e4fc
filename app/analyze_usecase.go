package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ludo-technologies/phishscan/domain"
)

// AnalyzeUseCase orchestrates the URL risk analysis workflow
type AnalyzeUseCase struct {
	service      domain.RiskService
	collector    domain.URLCollector
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(
	service domain.RiskService,
	collector domain.URLCollector,
	formatter domain.OutputFormatter,
	configLoader domain.ConfigurationLoader,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		service:      service,
		collector:    collector,
		formatter:    formatter,
		configLoader: configLoader,
	}
}

// Execute performs the complete analysis workflow and writes the
// formatted report to the request's output writer.
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	// Expand list files and directories into URLs
	urls, warnings, err := uc.collector.CollectURLs(req.URLs, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect URLs", err)
	}
	if len(urls) == 0 {
		return nil, domain.NewInvalidInputError("no URLs found in the specified inputs", nil)
	}
	req.URLs = urls

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("risk analysis failed", err)
	}
	response.Warnings = append(response.Warnings, warnings...)
	response.GeneratedAt = time.Now().UTC().Format(time.RFC3339)

	writer := req.OutputWriter
	if writer == nil {
		writer = os.Stdout
	}
	format := req.OutputFormat
	if format == "" {
		format = domain.OutputFormatText
	}
	if err := uc.formatter.Write(response, format, writer); err != nil {
		return nil, domain.NewAnalysisError("failed to write output", err)
	}

	return response, nil
}

// Analyze runs the analysis without writing a report. Used by callers
// that consume the response directly, such as the HTTP server.
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	response.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	return response, nil
}

// ExecuteWithConfig loads configuration, merges CLI overrides, and runs analysis
func (uc *AnalyzeUseCase) ExecuteWithConfig(ctx context.Context, override domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	var base *domain.AnalyzeRequest
	if override.ConfigPath != "" {
		loaded, err := uc.configLoader.LoadConfig(override.ConfigPath)
		if err != nil {
			return nil, err
		}
		base = loaded
	} else {
		base = uc.configLoader.LoadDefaultConfig()
	}

	merged := uc.configLoader.MergeConfig(base, &override)
	return uc.Execute(ctx, *merged)
}

// validateRequest validates the analyze request
func (uc *AnalyzeUseCase) validateRequest(req domain.AnalyzeRequest) error {
	if len(req.URLs) == 0 {
		return fmt.Errorf("no URLs specified")
	}

	if req.MinScore < 0 || req.MinScore > domain.MaxScore {
		return fmt.Errorf("minimum score must be in [0, %d]", domain.MaxScore)
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatCSV, "":
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	return nil
}

// AnalyzeUseCaseBuilder provides a builder for assembling an AnalyzeUseCase
type AnalyzeUseCaseBuilder struct {
	service      domain.RiskService
	collector    domain.URLCollector
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
}

// NewAnalyzeUseCaseBuilder creates a new builder
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{}
}

// WithService sets the risk service
func (b *AnalyzeUseCaseBuilder) WithService(service domain.RiskService) *AnalyzeUseCaseBuilder {
	b.service = service
	return b
}

// WithCollector sets the URL collector
func (b *AnalyzeUseCaseBuilder) WithCollector(collector domain.URLCollector) *AnalyzeUseCaseBuilder {
	b.collector = collector
	return b
}

// WithFormatter sets the output formatter
func (b *AnalyzeUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *AnalyzeUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *AnalyzeUseCaseBuilder) WithConfigLoader(loader domain.ConfigurationLoader) *AnalyzeUseCaseBuilder {
	b.configLoader = loader
	return b
}

// Build creates the AnalyzeUseCase
func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("risk service is required")
	}
	if b.collector == nil {
		return nil, fmt.Errorf("URL collector is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	if b.configLoader == nil {
		return nil, fmt.Errorf("configuration loader is required")
	}

	return NewAnalyzeUseCase(b.service, b.collector, b.formatter, b.configLoader), nil
}
