package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/analyzer"
	"github.com/ludo-technologies/phishscan/internal/config"
	"github.com/ludo-technologies/phishscan/internal/version"
)

// RiskServiceImpl implements the RiskService interface
type RiskServiceImpl struct {
	analyzer *analyzer.Analyzer
	progress domain.ProgressManager
	executor domain.ParallelExecutor
}

// NewRiskService creates a new risk service from risk configuration
func NewRiskService(cfg *config.RiskConfig) *RiskServiceImpl {
	return &RiskServiceImpl{
		analyzer: analyzerFromConfig(cfg),
	}
}

// NewRiskServiceWithProgress creates a new risk service with progress reporting
func NewRiskServiceWithProgress(cfg *config.RiskConfig, pm domain.ProgressManager) *RiskServiceImpl {
	return &RiskServiceImpl{
		analyzer: analyzerFromConfig(cfg),
		progress: pm,
	}
}

// NewRiskServiceFromConfig builds a risk service from the full configuration.
// Batch scoring runs through the parallel executor when
// performance.max_goroutines is greater than one.
func NewRiskServiceFromConfig(cfg *config.Config) *RiskServiceImpl {
	return NewRiskServiceFromConfigWithProgress(cfg, nil)
}

// NewRiskServiceFromConfigWithProgress is NewRiskServiceFromConfig with
// progress reporting
func NewRiskServiceFromConfigWithProgress(cfg *config.Config, pm domain.ProgressManager) *RiskServiceImpl {
	svc := &RiskServiceImpl{
		analyzer: analyzerFromConfig(&cfg.Risk),
		progress: pm,
	}
	if cfg.Performance.MaxGoroutines > 1 {
		svc.executor = NewParallelExecutorFromConfig(&cfg.Performance)
	}
	return svc
}

func analyzerFromConfig(cfg *config.RiskConfig) *analyzer.Analyzer {
	if cfg == nil {
		return analyzer.New(analyzer.Options{})
	}
	return analyzer.New(analyzer.Options{
		ExtraKeywords:       cfg.ExtraKeywords,
		ExtraAllowlist:      cfg.ExtraAllowlist,
		ExtraShorteners:     cfg.ExtraShorteners,
		ExtraBrands:         cfg.ExtraBrands,
		SuspiciousThreshold: cfg.SuspiciousThreshold,
		DangerousThreshold:  cfg.DangerousThreshold,
	})
}

// AnalyzeURL scores a single URL
func (s *RiskServiceImpl) AnalyzeURL(_ context.Context, rawURL string) domain.URLCheckResult {
	return s.analyzer.Analyze(rawURL)
}

// Analyze scores every URL in the request and aggregates the results
func (s *RiskServiceImpl) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if len(req.URLs) == 0 {
		return nil, domain.NewInvalidInputError("no URLs to analyze", nil)
	}

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if s.progress != nil {
		task = s.progress.StartTask("Scoring URLs", len(req.URLs))
	}
	defer task.Complete()

	var results []domain.URLCheckResult
	if s.executor != nil && len(req.URLs) > 1 {
		parallel, err := s.analyzeParallel(ctx, req.URLs, task)
		if err != nil {
			return nil, err
		}
		results = parallel
	} else {
		results = make([]domain.URLCheckResult, 0, len(req.URLs))
		for _, rawURL := range req.URLs {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
			default:
			}

			results = append(results, s.analyzer.Analyze(rawURL))
			task.Increment(1)
		}
	}

	filtered := filterResults(results, req.MinScore)
	sortResults(filtered, req.SortBy)

	return &domain.AnalyzeResponse{
		Results:     filtered,
		Summary:     summarize(results),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

// scoreTask scores one URL into its slot of a shared results slice.
// Each task owns a distinct index, so no locking is needed.
type scoreTask struct {
	rawURL   string
	index    int
	results  []domain.URLCheckResult
	analyzer *analyzer.Analyzer
	progress domain.TaskProgress
}

func (t *scoreTask) Name() string    { return t.rawURL }
func (t *scoreTask) IsEnabled() bool { return true }

func (t *scoreTask) Execute(_ context.Context) error {
	t.results[t.index] = t.analyzer.Analyze(t.rawURL)
	t.progress.Increment(1)
	return nil
}

// analyzeParallel scores URLs through the parallel executor, preserving
// input order in the results.
func (s *RiskServiceImpl) analyzeParallel(ctx context.Context, urls []string, task domain.TaskProgress) ([]domain.URLCheckResult, error) {
	results := make([]domain.URLCheckResult, len(urls))
	tasks := make([]domain.ExecutableTask, len(urls))
	for i, rawURL := range urls {
		tasks[i] = &scoreTask{
			rawURL:   rawURL,
			index:    i,
			results:  results,
			analyzer: s.analyzer,
			progress: task,
		}
	}

	if err := s.executor.Execute(ctx, tasks); err != nil {
		return nil, err
	}
	return results, nil
}

// filterResults drops results below the minimum score. The summary is
// always computed over the full set; filtering affects listing only.
func filterResults(results []domain.URLCheckResult, minScore int) []domain.URLCheckResult {
	if minScore <= 0 {
		return results
	}
	filtered := make([]domain.URLCheckResult, 0, len(results))
	for _, r := range results {
		if r.Score >= minScore {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func sortResults(results []domain.URLCheckResult, sortBy domain.SortCriteria) {
	switch sortBy {
	case domain.SortByURL:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].URL < results[j].URL
		})
	case domain.SortByStatus:
		statusOrder := map[domain.RiskStatus]int{
			domain.RiskStatusDangerous:  0,
			domain.RiskStatusSuspicious: 1,
			domain.RiskStatusSafe:       2,
		}
		sort.SliceStable(results, func(i, j int) bool {
			if statusOrder[results[i].Status] != statusOrder[results[j].Status] {
				return statusOrder[results[i].Status] < statusOrder[results[j].Status]
			}
			return results[i].Score > results[j].Score
		})
	default:
		// Highest score first
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}
}

func summarize(results []domain.URLCheckResult) domain.AnalyzeSummary {
	summary := domain.AnalyzeSummary{TotalURLs: len(results)}

	total := 0
	for _, r := range results {
		total += r.Score
		if r.Score > summary.MaxScore {
			summary.MaxScore = r.Score
		}
		switch r.Status {
		case domain.RiskStatusDangerous:
			summary.DangerousCount++
		case domain.RiskStatusSuspicious:
			summary.SuspiciousCount++
		case domain.RiskStatusSafe:
			summary.SafeCount++
		}
	}
	if len(results) > 0 {
		summary.AverageScore = float64(total) / float64(len(results))
	}
	return summary
}
