package service

import (
	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.AnalyzeRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToAnalyzeRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, first checking for a
// discoverable config file
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.AnalyzeRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err == nil {
		return c.convertToAnalyzeRequest(cfg)
	}

	// Fall back to hardcoded default configuration
	return c.convertToAnalyzeRequest(config.DefaultConfig())
}

// MergeConfig merges CLI flags with configuration file
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.AnalyzeRequest, override *domain.AnalyzeRequest) *domain.AnalyzeRequest {
	merged := *base

	// URLs always come from command arguments
	if len(override.URLs) > 0 {
		merged.URLs = override.URLs
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}

	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}

	if override.MinScore > 0 {
		merged.MinScore = override.MinScore
	}

	if override.SortBy != "" && override.SortBy != domain.SortByScore {
		merged.SortBy = override.SortBy
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}

	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	return &merged
}

// convertToAnalyzeRequest converts a Config to AnalyzeRequest
func (c *ConfigurationLoaderImpl) convertToAnalyzeRequest(cfg *config.Config) *domain.AnalyzeRequest {
	return &domain.AnalyzeRequest{
		// URLs are set by the caller, not from config
		URLs: []string{},

		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,
		MinScore:     cfg.Output.MinScore,
		SortBy:       domain.SortCriteria(cfg.Output.SortBy),

		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}
}
