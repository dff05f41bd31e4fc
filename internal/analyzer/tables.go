package analyzer

// Rule weights. Each triggered rule adds its weight to the accumulated
// score before clamping.
const (
	WeightHostKeywords  = 30
	WeightPathKeywords  = 20
	WeightShortener     = 25
	WeightHyphenPattern = 15
	WeightBrandSpoof    = 40
	WeightIPAddress     = 35
	WeightSubdomains    = 20
	WeightInsecureHTTP  = 15
)

// Structural rule limits
const (
	// MaxHyphenSegments is the highest hyphen segment count a hostname can
	// have before it is considered suspicious
	MaxHyphenSegments = 3

	// MaxSubdomainLabels is the highest dot-separated label count a
	// hostname can have before it is considered suspicious
	MaxSubdomainLabels = 4
)

// Reason strings emitted by the rules and the classifier
const (
	ReasonHostKeywords  = "Domain contains suspicious keywords"
	ReasonPathKeywords  = "URL path contains phishing-related terms"
	ReasonShortener     = "Uses URL shortening service"
	ReasonHyphenPattern = "Domain has suspicious hyphen pattern"
	ReasonIPAddress     = "Uses IP address instead of domain name"
	ReasonSubdomains    = "Excessive subdomains detected"
	ReasonInsecureHTTP  = "Not using secure HTTPS connection"

	SummaryDangerous  = "High risk of phishing"
	SummarySuspicious = "Potential security concerns"
	SummarySafe       = "No obvious red flags detected"

	ReasonUnparsable         = "Unable to parse URL"
	ReasonMalformedIndicator = "Malformed input is a common phishing indicator"
)

// MalformedScore is the fixed score assigned when the input cannot be
// normalized into a parseable URL. Malformed input is evidence of risk,
// not a hard failure.
const MalformedScore = 30

// suspiciousKeywords are terms commonly found in phishing hostnames and paths.
var suspiciousKeywords = []string{
	"login", "verify", "update", "urgent", "suspend", "confirm",
	"security", "paypal", "amazon", "netflix", "microsoft", "google",
	"facebook", "bank", "secure", "account", "expired", "limited",
	"restricted",
}

// legitimateDomains exempts real brand and authentication hosts from the
// hostname keyword rule. Matching is substring-based; the path keyword rule
// deliberately has no such exemption.
var legitimateDomains = []string{
	"login.microsoftonline.com",
	"accounts.google.com",
	"secure.paypal.com",
	"login.live.com",
	"google.com",
	"paypal.com",
	"amazon.com",
	"microsoft.com",
	"apple.com",
	"netflix.com",
	"facebook.com",
}

// shortenerDomains are redirect services that obscure the true destination.
var shortenerDomains = []string{
	"bit.ly", "tinyurl.com", "t.co", "short.link", "tiny.cc",
}

// impersonatedBrands are brands whose names in a hostname must be backed by
// the brand's canonical .com/.net suffix.
var impersonatedBrands = []string{
	"paypal", "amazon", "microsoft", "google", "apple", "netflix",
}
