package config

import "strconv"

// Strictness represents the classification strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// StrictnessPreset holds threshold values for different strictness levels
type StrictnessPreset struct {
	SuspiciousThreshold int
	DangerousThreshold  int
}

// GetStrictnessPresets returns thresholds for different strictness levels.
// Standard matches the documented scoring behavior.
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			SuspiciousThreshold: 40,
			DangerousThreshold:  70,
		},
		StrictnessStandard: {
			SuspiciousThreshold: DefaultSuspiciousThreshold,
			DangerousThreshold:  DefaultDangerousThreshold,
		},
		StrictnessStrict: {
			SuspiciousThreshold: 15,
			DangerousThreshold:  35,
		},
	}
}

// GetFullConfigTemplate returns the documented config template as YAML
func GetFullConfigTemplate(strictness Strictness) string {
	preset := GetStrictnessPresets()[strictness]

	return `# phishscan configuration
# Documentation: https://github.com/ludo-technologies/phishscan

# ==============================================================================
# RISK SCORING
# ==============================================================================
# Scores accumulate from triggered heuristic rules and are clamped to 0-100.
risk:
  # Lowest score classified as suspicious
  suspicious_threshold: ` + strconv.Itoa(preset.SuspiciousThreshold) + `

  # Lowest score classified as dangerous
  dangerous_threshold: ` + strconv.Itoa(preset.DangerousThreshold) + `

  # Additional phishing keywords checked against hostnames and paths.
  # These extend the built-in list; they never replace it.
  extra_keywords: []

  # Additional hostnames exempted from the hostname keyword rule
  # (substring match, e.g. "sso.mycompany.com")
  extra_allowlist: []

  # Additional URL shortener domains
  extra_shorteners: []

  # Additional brand names checked for impersonation
  extra_brands: []

# ==============================================================================
# OUTPUT SETTINGS
# ==============================================================================
output:
  # Output format: "text", "json", "yaml", "csv"
  format: text

  # Print per-URL reasons in text output
  show_details: false

  # Sort results by: "score", "url", "status"
  sort_by: score

  # Minimum score to report (0 reports everything)
  min_score: 0

# ==============================================================================
# INPUT COLLECTION
# ==============================================================================
# Controls how URL list files are gathered from directories.
analysis:
  recursive: true
  include_patterns: ["*.txt", "*.urls"]
  exclude_patterns: [".git", "node_modules", "vendor"]

# ==============================================================================
# BATCH PERFORMANCE
# ==============================================================================
performance:
  max_goroutines: ` + strconv.Itoa(DefaultMaxGoroutines) + `
  timeout_seconds: ` + strconv.Itoa(DefaultTimeoutSeconds) + `

# ==============================================================================
# API SERVER (phishscan serve)
# ==============================================================================
server:
  listen_addr: "` + DefaultListenAddr + `"
  storage_dir: "` + DefaultStorageDir + `"
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# phishscan configuration (minimal)
# See full options: https://github.com/ludo-technologies/phishscan

risk:
  suspicious_threshold: ` + strconv.Itoa(DefaultSuspiciousThreshold) + `
  dangerous_threshold: ` + strconv.Itoa(DefaultDangerousThreshold) + `

output:
  format: text
  sort_by: score
`
}
