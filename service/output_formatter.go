package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/version"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	showDetails bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// NewOutputFormatterWithDetails creates a formatter that prints per-URL
// reasons in text output
func NewOutputFormatterWithDetails(showDetails bool) *OutputFormatterImpl {
	return &OutputFormatterImpl{showDetails: showDetails}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// AnalyzeResponseJSON wraps AnalyzeResponse with versioned metadata
type AnalyzeResponseJSON struct {
	Version     string                  `json:"version" yaml:"version"`
	GeneratedAt string                  `json:"generated_at" yaml:"generated_at"`
	Results     []domain.URLCheckResult `json:"results" yaml:"results"`
	Summary     domain.AnalyzeSummary   `json:"summary" yaml:"summary"`
	Warnings    []string                `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Format formats the analysis response according to the specified format
func (f *OutputFormatterImpl) Format(response *domain.AnalyzeResponse, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(response, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the formatted output to the writer
func (f *OutputFormatterImpl) Write(response *domain.AnalyzeResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, f.envelope(response))
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatCSV:
		return f.writeCSV(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (f *OutputFormatterImpl) envelope(response *domain.AnalyzeResponse) AnalyzeResponseJSON {
	return AnalyzeResponseJSON{
		Version:     version.Version,
		GeneratedAt: response.GeneratedAt,
		Results:     response.Results,
		Summary:     response.Summary,
		Warnings:    response.Warnings,
	}
}

func (f *OutputFormatterImpl) writeYAML(response *domain.AnalyzeResponse, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	defer enc.Close()
	return enc.Encode(f.envelope(response))
}

func (f *OutputFormatterImpl) writeCSV(response *domain.AnalyzeResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write([]string{"url", "status", "score", "reasons"}); err != nil {
		return err
	}
	for _, r := range response.Results {
		record := []string{r.URL, string(r.Status), strconv.Itoa(r.Score), strings.Join(r.Reasons, "; ")}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (f *OutputFormatterImpl) writeText(response *domain.AnalyzeResponse, writer io.Writer) error {
	fmt.Fprintln(writer, "URL Risk Analysis")
	fmt.Fprintln(writer, "=================")
	fmt.Fprintln(writer)

	for _, r := range response.Results {
		fmt.Fprintf(writer, "%-11s %3d  %s\n", strings.ToUpper(string(r.Status)), r.Score, r.URL)
		if f.showDetails {
			for _, reason := range r.Reasons {
				fmt.Fprintf(writer, "%17s- %s\n", "", reason)
			}
		}
	}

	s := response.Summary
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "Summary:")
	fmt.Fprintf(writer, "  URLs analyzed: %d\n", s.TotalURLs)
	fmt.Fprintf(writer, "  Dangerous:     %d\n", s.DangerousCount)
	fmt.Fprintf(writer, "  Suspicious:    %d\n", s.SuspiciousCount)
	fmt.Fprintf(writer, "  Safe:          %d\n", s.SafeCount)
	fmt.Fprintf(writer, "  Average score: %.1f\n", s.AverageScore)
	fmt.Fprintf(writer, "  Highest score: %d\n", s.MaxScore)

	if len(response.Warnings) > 0 {
		fmt.Fprintln(writer)
		fmt.Fprintln(writer, "Warnings:")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	return nil
}
