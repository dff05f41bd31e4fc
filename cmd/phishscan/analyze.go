package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/phishscan/app"
	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/config"
	"github.com/ludo-technologies/phishscan/service"
	"github.com/spf13/cobra"
)

var (
	analyzeOutputFormat string
	analyzeOutputPath   string
	analyzeJSONOutput   bool
	analyzeShowDetails  bool
	analyzeMinScore     int
	analyzeSortBy       string
	analyzeRecursive    bool
	analyzeConfigPath   string
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [url|file|dir...]",
		Short: "Score URLs for phishing risk",
		Long: `Score URLs for phishing risk using weighted heuristic rules.

Arguments may be literal URLs, files with one URL per line, or
directories of such list files.

Examples:
  phishscan analyze https://example.com
  phishscan analyze urls.txt
  phishscan analyze --details --min-score 25 urls.txt
  phishscan analyze --format json suspects/ > report.json`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeOutputFormat, "format", "f", "text",
		"Output format: text, json, yaml, csv")
	cmd.Flags().BoolVar(&analyzeJSONOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&analyzeOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVarP(&analyzeShowDetails, "details", "d", false,
		"Show per-URL reasons in text output")
	cmd.Flags().IntVar(&analyzeMinScore, "min-score", 0,
		"Only report URLs with score >= N")
	cmd.Flags().StringVar(&analyzeSortBy, "sort", "score",
		"Sort results by: score, url, status")
	cmd.Flags().BoolVarP(&analyzeRecursive, "recursive", "r", false,
		"Recurse into directories when collecting list files")
	cmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	if len(args) == 0 {
		return fmt.Errorf("no URLs specified")
	}

	format := domain.OutputFormat(analyzeOutputFormat)
	if analyzeJSONOutput {
		format = domain.OutputFormatJSON
	}

	// Load configuration
	cfg, err := config.LoadConfigWithTarget(analyzeConfigPath, "")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Determine output writer
	var writer *os.File
	if analyzeOutputPath != "" {
		f, createErr := os.Create(analyzeOutputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}()
		writer = f
	} else {
		writer = os.Stdout
	}

	// Progress is auto-disabled for machine-readable output and non-TTY
	pm := service.NewProgressManager(format == domain.OutputFormatText && analyzeOutputPath == "")
	defer pm.Close()

	uc, err := app.NewAnalyzeUseCaseBuilder().
		WithService(service.NewRiskServiceFromConfigWithProgress(cfg, pm)).
		WithCollector(service.NewURLCollector()).
		WithFormatter(service.NewOutputFormatterWithDetails(analyzeShowDetails || cfg.Output.ShowDetails)).
		WithConfigLoader(service.NewConfigurationLoader()).
		Build()
	if err != nil {
		return err
	}

	req := domain.AnalyzeRequest{
		URLs:            args,
		OutputFormat:    format,
		OutputWriter:    writer,
		ShowDetails:     analyzeShowDetails || cfg.Output.ShowDetails,
		MinScore:        analyzeMinScore,
		SortBy:          domain.SortCriteria(analyzeSortBy),
		Recursive:       analyzeRecursive || cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}
	if !cmd.Flags().Changed("min-score") {
		req.MinScore = cfg.Output.MinScore
	}
	if !cmd.Flags().Changed("sort") && cfg.Output.SortBy != "" {
		req.SortBy = domain.SortCriteria(cfg.Output.SortBy)
	}

	if _, err := uc.Execute(context.Background(), req); err != nil {
		return err
	}

	if analyzeOutputPath != "" {
		absPath, _ := filepath.Abs(analyzeOutputPath)
		fmt.Printf("Output saved to: %s\n", absPath)
	}

	return nil
}
