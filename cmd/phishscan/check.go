package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/config"
	"github.com/ludo-technologies/phishscan/internal/version"
	"github.com/ludo-technologies/phishscan/service"
	"github.com/spf13/cobra"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMaxScore        int
	checkAllowSuspicious bool
	checkVerbose         bool
	checkJSON            bool
	checkConfigPath      string
)

// checkResult is the machine-readable outcome of a check run
type checkResult struct {
	Passed      bool                    `json:"passed"`
	ExitCode    int                     `json:"exit_code"`
	Violations  []domain.URLCheckResult `json:"violations"`
	TotalURLs   int                     `json:"total_urls"`
	Duration    int64                   `json:"duration_ms"`
	GeneratedAt string                  `json:"generated_at"`
	Version     string                  `json:"version"`
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url|file|dir...]",
		Short: "Fast risk check for CI/CD pipelines",
		Long: `Check URLs against a risk threshold for CI/CD integration.

Exit codes:
  0 - All URLs pass
  1 - Risk threshold violated
  2 - Input or configuration error

Examples:
  # Fail if any URL scores 50 or higher
  phishscan check --max-score 49 urls.txt

  # Tolerate suspicious URLs, fail only on dangerous ones
  phishscan check --allow-suspicious urls.txt

  # JSON output for machine parsing
  phishscan check --json urls.txt`,
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().IntVar(&checkMaxScore, "max-score", domain.DangerousThreshold-1,
		"Maximum allowed risk score per URL")
	cmd.Flags().BoolVar(&checkAllowSuspicious, "allow-suspicious", false,
		"Only fail on dangerous URLs regardless of --max-score")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no URLs specified"}
	}

	startTime := time.Now()

	cfg, err := config.LoadConfigWithTarget(checkConfigPath, "")
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	collector := service.NewURLCollector()
	urls, warnings, err := collector.CollectURLs(args, cfg.Analysis.Recursive,
		cfg.Analysis.IncludePatterns, cfg.Analysis.ExcludePatterns)
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to collect URLs: %v", err)}
	}
	if len(urls) == 0 {
		return &CheckExitError{Code: 2, Message: "no URLs found"}
	}
	if !checkJSON {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	svc := service.NewRiskServiceFromConfig(cfg)
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{URLs: urls})
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	result := &checkResult{
		Passed:     true,
		Violations: []domain.URLCheckResult{},
		TotalURLs:  len(resp.Results),
	}

	for _, r := range resp.Results {
		if violates(r) {
			result.Passed = false
			result.Violations = append(result.Violations, r)
		}
	}

	return outputCheckResult(result, startTime)
}

// violates reports whether a single result fails the configured check
func violates(r domain.URLCheckResult) bool {
	if checkAllowSuspicious {
		return r.Status == domain.RiskStatusDangerous
	}
	return r.Score > checkMaxScore
}

func outputCheckResult(result *checkResult, startTime time.Time) error {
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.Version
	result.ExitCode = 0
	if !result.Passed {
		result.ExitCode = 1
	}

	if checkJSON {
		return outputCheckJSON(result)
	}

	return outputCheckText(result)
}

func outputCheckText(result *checkResult) error {
	if result.Passed {
		fmt.Println("PASS: All URLs within risk threshold")
		if checkVerbose {
			fmt.Printf("  URLs checked: %d\n", result.TotalURLs)
			fmt.Printf("  Duration: %dms\n", result.Duration)
		}
		return nil
	}

	fmt.Println("FAIL: Risk check failed")
	fmt.Printf("  Violations: %d of %d URLs\n", len(result.Violations), result.TotalURLs)

	for _, v := range result.Violations {
		fmt.Printf("  [%s] %3d %s\n", v.Status, v.Score, v.URL)
		if checkVerbose {
			for _, reason := range v.Reasons {
				fmt.Printf("         - %s\n", reason)
			}
		}
	}

	return &CheckExitError{Code: 1}
}

func outputCheckJSON(result *checkResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode result: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: 1}
	}
	return nil
}
