// Package analyzer implements the heuristic URL risk scorer. Scoring is a
// pure computation over the input string and fixed constant tables: no
// network fetch, DNS resolution, or reputation lookup is performed.
package analyzer

import (
	"net/url"
	"strings"

	"github.com/ludo-technologies/phishscan/domain"
)

// Options customizes an Analyzer. Extra entries extend the built-in tables;
// they never replace them. Zero thresholds fall back to the defaults.
type Options struct {
	// ExtraKeywords are appended to the suspicious keyword list used by the
	// hostname and path rules
	ExtraKeywords []string

	// ExtraAllowlist are appended to the legitimate-domain exemption list
	ExtraAllowlist []string

	// ExtraShorteners are appended to the URL shortener domain list
	ExtraShorteners []string

	// ExtraBrands are appended to the impersonation brand list
	ExtraBrands []string

	// SuspiciousThreshold is the lowest score classified as suspicious
	SuspiciousThreshold int

	// DangerousThreshold is the lowest score classified as dangerous
	DangerousThreshold int
}

// Analyzer evaluates a fixed ordered set of heuristic rules against a URL.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	rules               []rule
	suspiciousThreshold int
	dangerousThreshold  int
}

// New creates an Analyzer. Rule order is fixed: it determines the order in
// which reasons are appended to results.
func New(opts Options) *Analyzer {
	keywords := appendCopy(suspiciousKeywords, opts.ExtraKeywords)
	allowlist := appendCopy(legitimateDomains, opts.ExtraAllowlist)
	shorteners := appendCopy(shortenerDomains, opts.ExtraShorteners)
	brands := appendCopy(impersonatedBrands, opts.ExtraBrands)

	suspicious := opts.SuspiciousThreshold
	if suspicious <= 0 {
		suspicious = domain.SuspiciousThreshold
	}
	dangerous := opts.DangerousThreshold
	if dangerous <= 0 {
		dangerous = domain.DangerousThreshold
	}

	return &Analyzer{
		rules: []rule{
			hostKeywordRule{keywords: keywords, allowlist: allowlist},
			pathKeywordRule{keywords: keywords},
			shortenerRule{shorteners: shorteners},
			hyphenPatternRule{},
			brandSpoofRule{brands: brands},
			ipAddressRule{},
			subdomainRule{},
			insecureSchemeRule{},
		},
		suspiciousThreshold: suspicious,
		dangerousThreshold:  dangerous,
	}
}

// defaultAnalyzer backs the package-level Analyze. Built once; never mutated.
var defaultAnalyzer = New(Options{})

// Analyze scores rawURL with the default rule tables and thresholds.
func Analyze(rawURL string) domain.URLCheckResult {
	return defaultAnalyzer.Analyze(rawURL)
}

// Analyze normalizes rawURL, evaluates every rule in order, and maps the
// clamped score to a classification. It never returns an error: input that
// cannot be parsed yields a fixed suspicious result, since malformed input
// is itself evidence of risk.
func (a *Analyzer) Analyze(rawURL string) domain.URLCheckResult {
	parts, ok := normalize(rawURL)
	if !ok {
		return domain.URLCheckResult{
			URL:     rawURL,
			Status:  domain.RiskStatusSuspicious,
			Score:   MalformedScore,
			Reasons: []string{ReasonUnparsable, ReasonMalformedIndicator},
		}
	}

	score := 0
	var reasons []string
	for _, r := range a.rules {
		s, rs := r.evaluate(parts)
		if s > 0 {
			score += s
			reasons = append(reasons, rs...)
		}
	}

	if score > domain.MaxScore {
		score = domain.MaxScore
	}

	switch {
	case score >= a.dangerousThreshold:
		reasons = append([]string{SummaryDangerous}, reasons...)
		return domain.URLCheckResult{URL: rawURL, Status: domain.RiskStatusDangerous, Score: score, Reasons: reasons}
	case score >= a.suspiciousThreshold:
		reasons = append([]string{SummarySuspicious}, reasons...)
		return domain.URLCheckResult{URL: rawURL, Status: domain.RiskStatusSuspicious, Score: score, Reasons: reasons}
	default:
		if len(reasons) == 0 {
			reasons = []string{SummarySafe}
		}
		return domain.URLCheckResult{URL: rawURL, Status: domain.RiskStatusSafe, Score: score, Reasons: reasons}
	}
}

// normalize turns the raw input into lowercased URL components. Input
// without an http/https prefix is treated as https. A parse failure or an
// empty hostname means the input is not analyzable as a URL.
func normalize(rawURL string) (*urlParts, bool) {
	trimmed := strings.TrimSpace(rawURL)
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil, false
	}

	return &urlParts{
		scheme: strings.ToLower(u.Scheme),
		host:   host,
		path:   strings.ToLower(u.Path),
	}, true
}

func appendCopy(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
