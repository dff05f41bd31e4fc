package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default risk classification thresholds
const (
	// DefaultSuspiciousThreshold is the lowest score classified as suspicious
	DefaultSuspiciousThreshold = 25

	// DefaultDangerousThreshold is the lowest score classified as dangerous
	DefaultDangerousThreshold = 50

	// DefaultMinScoreFilter defines the minimum score to report
	DefaultMinScoreFilter = 0
)

// Default performance settings
const (
	DefaultMaxGoroutines  = 4
	DefaultTimeoutSeconds = 60
)

// Default server settings
const (
	DefaultListenAddr = ":8380"
	DefaultStorageDir = "~/.phishscan"
)

// Config represents the main configuration structure
type Config struct {
	// Risk holds rule table extensions and classification thresholds
	Risk RiskConfig `json:"risk" mapstructure:"risk" yaml:"risk"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds input collection configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Performance holds batch execution configuration
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`

	// Server holds HTTP API configuration
	Server ServerConfig `json:"server" mapstructure:"server" yaml:"server"`
}

// RiskConfig holds configuration for the risk scorer.
// Extra entries extend the built-in tables; they never replace them.
type RiskConfig struct {
	// SuspiciousThreshold is the lowest score classified as suspicious
	SuspiciousThreshold int `json:"suspiciousThreshold" mapstructure:"suspicious_threshold" yaml:"suspicious_threshold"`

	// DangerousThreshold is the lowest score classified as dangerous
	DangerousThreshold int `json:"dangerousThreshold" mapstructure:"dangerous_threshold" yaml:"dangerous_threshold"`

	// ExtraKeywords extends the suspicious keyword list
	ExtraKeywords []string `json:"extraKeywords" mapstructure:"extra_keywords" yaml:"extra_keywords"`

	// ExtraAllowlist extends the legitimate-domain exemption list
	ExtraAllowlist []string `json:"extraAllowlist" mapstructure:"extra_allowlist" yaml:"extra_allowlist"`

	// ExtraShorteners extends the URL shortener domain list
	ExtraShorteners []string `json:"extraShorteners" mapstructure:"extra_shorteners" yaml:"extra_shorteners"`

	// ExtraBrands extends the impersonation brand list
	ExtraBrands []string `json:"extraBrands" mapstructure:"extra_brands" yaml:"extra_brands"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether per-URL reasons are printed in text output
	ShowDetails bool `json:"show_details" mapstructure:"show_details" yaml:"show_details"`

	// SortBy specifies how to sort results: score, url, status
	SortBy string `json:"sort_by" mapstructure:"sort_by" yaml:"sort_by"`

	// MinScore is the minimum score to report (filters low values)
	MinScore int `json:"min_score" mapstructure:"min_score" yaml:"min_score"`
}

// AnalysisConfig holds configuration for URL list collection
type AnalysisConfig struct {
	// Recursive controls whether directories are walked recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// IncludePatterns lists glob patterns for URL list files
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns lists gitignore-style patterns to skip
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
}

// PerformanceConfig holds batch execution settings
type PerformanceConfig struct {
	// MaxGoroutines bounds concurrent scoring workers
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds total batch execution time
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to
	ListenAddr string `json:"listen_addr" mapstructure:"listen_addr" yaml:"listen_addr"`

	// StorageDir is the directory holding the report history database
	StorageDir string `json:"storage_dir" mapstructure:"storage_dir" yaml:"storage_dir"`
}

// DefaultConfig returns the built-in defaults. Zero-config behavior is the
// documented scoring behavior: thresholds 25/50 and the built-in tables.
func DefaultConfig() *Config {
	return &Config{
		Risk: RiskConfig{
			SuspiciousThreshold: DefaultSuspiciousThreshold,
			DangerousThreshold:  DefaultDangerousThreshold,
			ExtraKeywords:       []string{},
			ExtraAllowlist:      []string{},
			ExtraShorteners:     []string{},
			ExtraBrands:         []string{},
		},
		Output: OutputConfig{
			Format:      "text",
			ShowDetails: false,
			SortBy:      "score",
			MinScore:    DefaultMinScoreFilter,
		},
		Analysis: AnalysisConfig{
			Recursive:       true,
			IncludePatterns: []string{"*.txt", "*.urls"},
			ExcludePatterns: []string{".git", "node_modules", "vendor"},
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Server: ServerConfig{
			ListenAddr: DefaultListenAddr,
			StorageDir: DefaultStorageDir,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context.
// If no explicit path is given, config files are discovered from the target
// directory upward, then the working directory, XDG config, and home.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Separate viper instance per load to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"phishscan.yaml",
		"phishscan.yml",
		".phishscan.toml",
		".phishscan.yml",
		"phishscan.json",
		".phishscan.json",
	}

	// Search from the target directory up to the filesystem root
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if parent := filepath.Dir(dir); parent == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "phishscan"), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", "phishscan"), candidates); config != "" {
			return config
		}
		if config := searchConfigInDirectory(home, candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv("PHISHSCAN_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Risk.SuspiciousThreshold < 1 {
		return fmt.Errorf("risk.suspicious_threshold must be >= 1, got %d", c.Risk.SuspiciousThreshold)
	}

	if c.Risk.DangerousThreshold <= c.Risk.SuspiciousThreshold {
		return fmt.Errorf("risk.dangerous_threshold (%d) must be > suspicious_threshold (%d)",
			c.Risk.DangerousThreshold, c.Risk.SuspiciousThreshold)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
		"csv":  true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output.format must be one of text, json, yaml, csv; got %q", c.Output.Format)
	}

	validSorts := map[string]bool{
		"score":  true,
		"url":    true,
		"status": true,
	}
	if !validSorts[c.Output.SortBy] {
		return fmt.Errorf("output.sort_by must be one of score, url, status; got %q", c.Output.SortBy)
	}

	if c.Output.MinScore < 0 || c.Output.MinScore > 100 {
		return fmt.Errorf("output.min_score must be in [0, 100], got %d", c.Output.MinScore)
	}

	if c.Performance.MaxGoroutines < 0 {
		return fmt.Errorf("performance.max_goroutines must be >= 0, got %d", c.Performance.MaxGoroutines)
	}

	if c.Performance.TimeoutSeconds < 0 {
		return fmt.Errorf("performance.timeout_seconds must be >= 0, got %d", c.Performance.TimeoutSeconds)
	}

	return nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("risk", config.Risk)
	v.Set("output", config.Output)
	v.Set("analysis", config.Analysis)
	v.Set("performance", config.Performance)
	v.Set("server", config.Server)

	return v.WriteConfig()
}
