package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// urlParts holds the normalized components a rule evaluates against.
// All fields are lowercased.
type urlParts struct {
	scheme string
	host   string
	path   string
}

// rule is one independent condition-weight-reason triple. evaluate returns
// the contributed score and the reasons to append, in order. Most rules
// fire at most once; the brand rule may contribute once per matching brand.
type rule interface {
	name() string
	evaluate(u *urlParts) (int, []string)
}

// hostKeywordRule flags hostnames containing phishing-related terms unless
// the hostname matches a known legitimate domain. The exemption is
// substring-based and applies to this rule only.
type hostKeywordRule struct {
	keywords  []string
	allowlist []string
}

func (r hostKeywordRule) name() string { return "host-keywords" }

func (r hostKeywordRule) evaluate(u *urlParts) (int, []string) {
	if !containsAny(u.host, r.keywords) {
		return 0, nil
	}
	if containsAny(u.host, r.allowlist) {
		return 0, nil
	}
	return WeightHostKeywords, []string{ReasonHostKeywords}
}

// pathKeywordRule flags URL paths containing phishing-related terms.
// It has no legitimate-domain exemption.
type pathKeywordRule struct {
	keywords []string
}

func (r pathKeywordRule) name() string { return "path-keywords" }

func (r pathKeywordRule) evaluate(u *urlParts) (int, []string) {
	if !containsAny(u.path, r.keywords) {
		return 0, nil
	}
	return WeightPathKeywords, []string{ReasonPathKeywords}
}

// shortenerRule flags hostnames of URL shortening services.
type shortenerRule struct {
	shorteners []string
}

func (r shortenerRule) name() string { return "url-shortener" }

func (r shortenerRule) evaluate(u *urlParts) (int, []string) {
	if !containsAny(u.host, r.shorteners) {
		return 0, nil
	}
	return WeightShortener, []string{ReasonShortener}
}

// hyphenPatternRule flags hostnames split into many hyphen segments,
// a pattern common in lookalike domains.
type hyphenPatternRule struct{}

func (hyphenPatternRule) name() string { return "hyphen-pattern" }

func (hyphenPatternRule) evaluate(u *urlParts) (int, []string) {
	if !strings.Contains(u.host, "-") {
		return 0, nil
	}
	if len(strings.Split(u.host, "-")) <= MaxHyphenSegments {
		return 0, nil
	}
	return WeightHyphenPattern, []string{ReasonHyphenPattern}
}

// brandSpoofRule flags hostnames that mention a known brand without ending
// in the brand's canonical .com or .net domain. It contributes its weight
// once per matching brand.
type brandSpoofRule struct {
	brands []string
}

func (r brandSpoofRule) name() string { return "brand-spoof" }

func (r brandSpoofRule) evaluate(u *urlParts) (int, []string) {
	score := 0
	var reasons []string
	for _, brand := range r.brands {
		if !strings.Contains(u.host, brand) {
			continue
		}
		if strings.HasSuffix(u.host, brand+".com") || strings.HasSuffix(u.host, brand+".net") {
			continue
		}
		score += WeightBrandSpoof
		reasons = append(reasons, fmt.Sprintf("Potentially impersonating %s", brand))
	}
	return score, reasons
}

// ipv4Prefix matches a leading dotted-quad numeric pattern.
var ipv4Prefix = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// ipAddressRule flags hostnames that start with an IPv4 literal.
type ipAddressRule struct{}

func (ipAddressRule) name() string { return "ip-address" }

func (ipAddressRule) evaluate(u *urlParts) (int, []string) {
	if !ipv4Prefix.MatchString(u.host) {
		return 0, nil
	}
	return WeightIPAddress, []string{ReasonIPAddress}
}

// subdomainRule flags hostnames with an excessive number of labels.
type subdomainRule struct{}

func (subdomainRule) name() string { return "subdomains" }

func (subdomainRule) evaluate(u *urlParts) (int, []string) {
	if len(strings.Split(u.host, ".")) <= MaxSubdomainLabels {
		return 0, nil
	}
	return WeightSubdomains, []string{ReasonSubdomains}
}

// insecureSchemeRule flags plain-HTTP URLs.
type insecureSchemeRule struct{}

func (insecureSchemeRule) name() string { return "insecure-scheme" }

func (insecureSchemeRule) evaluate(u *urlParts) (int, []string) {
	if u.scheme != "http" {
		return 0, nil
	}
	return WeightInsecureHTTP, []string{ReasonInsecureHTTP}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
