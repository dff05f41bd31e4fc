package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "phishscan"

	// ConfigFileName is the default config file name
	ConfigFileName = ".phishscan.toml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "PHISHSCAN"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
	OutputFormatCSV  = "csv"
)

// Risk status constants
const (
	StatusSafe       = "safe"
	StatusSuspicious = "suspicious"
	StatusDangerous  = "dangerous"
)

// Input limits
const (
	// MaxURLLength is the longest input line treated as a URL; longer
	// lines are reported as warnings and skipped
	MaxURLLength = 2048

	// MaxBatchSize caps a single API batch request
	MaxBatchSize = 1000
)
