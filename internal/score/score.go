package score

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
)

// Signal weights. Every signal is evaluated on every URL, the weights are
// additive, and the total is clamped to [0, 1] before rounding.
const (
	weightIPHost         = 0.35
	weightManyHyphens    = 0.20
	weightFewHyphens     = 0.05
	weightCredentials    = 0.25
	weightLongURL        = 0.05
	weightKeyword        = 0.15
	weightBrandLookalike = 0.25
	weightKnownBrand     = -0.05
	weightPlainHTTP      = 0.02
)

const (
	manyHyphensMin   = 3
	longURLThreshold = 75
)

// DefaultThreshold is the score at or above which a URL is labeled phishing.
const DefaultThreshold = 0.5

const (
	LabelPhishing = "phishing"
	LabelBenign   = "benign"
)

// popularBrands is compared against the host's second-level label to catch
// typosquats. An exact member match lowers the score instead.
var popularBrands = []string{
	"google", "facebook", "paypal", "amazon", "microsoft", "linkedin",
	"github", "instagram", "twitter", "apple", "youtube", "bank",
}

// suspiciousKeywords are matched as substrings of the lowercased path+query.
var suspiciousKeywords = []string{
	"login", "verify", "secure", "account", "update", "bank", "webscr",
	"signin", "confirm",
}

// Four dot-separated groups of 1-3 digits. Groups above 255 still match;
// the signal is "address instead of a name", not address validity.
var ipHostRe = regexp.MustCompile(`^\d{1,3}(?:\.\d{1,3}){3}$`)

// Score assigns a suspicion score in [0, 1] to a raw URL string together
// with the ordered list of reason tags for the signals that fired. It never
// returns an error: input that cannot be parsed is treated as maximally
// suspicious and tagged "parse_error".
func Score(raw string) (float64, []string) {
	target := raw
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}
	u, err := url.Parse(target)
	if err != nil {
		return 1.0, []string{"parse_error"}
	}

	host := strings.ToLower(u.Hostname())
	pathq := u.Path
	if u.RawQuery != "" {
		pathq += "?" + u.RawQuery
	}

	total := 0.0
	var reasons []string

	if ipHostRe.MatchString(host) {
		total += weightIPHost
		reasons = append(reasons, "ip_in_host")
	}

	switch hyphens := strings.Count(host, "-"); {
	case hyphens >= manyHyphensMin:
		total += weightManyHyphens
		reasons = append(reasons, fmt.Sprintf("many_hyphens(%d)", hyphens))
	case hyphens >= 1:
		total += weightFewHyphens
	}

	if strings.Contains(raw, "@") {
		total += weightCredentials
		reasons = append(reasons, "@_in_url")
	}

	if len(raw) > longURLThreshold {
		total += weightLongURL
		reasons = append(reasons, "long_url")
	}

	if containsSuspiciousKeyword(pathq) {
		total += weightKeyword
		reasons = append(reasons, "suspicious_keyword")
	}

	base := baseLabel(host)
	if brand := closestBrand(base); brand != "" && brand != base {
		total += weightBrandLookalike
		reasons = append(reasons, fmt.Sprintf("misspelled_brand_like(%s)", brand))
	} else if isPopularBrand(base) {
		total += weightKnownBrand
	}

	if u.Scheme == "http" {
		total += weightPlainHTTP
		reasons = append(reasons, "no_https")
	}

	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}
	return math.Round(total*1000) / 1000, reasons
}

// Label classifies a score against a threshold. The boundary is inclusive on
// the phishing side.
func Label(value, threshold float64) string {
	if value >= threshold {
		return LabelPhishing
	}
	return LabelBenign
}

func containsSuspiciousKeyword(pathq string) bool {
	pathq = strings.ToLower(pathq)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(pathq, kw) {
			return true
		}
	}
	return false
}

// baseLabel returns the second-to-last dot-separated host label when the
// host has at least two labels, else the sole label. For "signin.paypa1.com"
// that is "paypa1".
func baseLabel(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return parts[0]
}

func isPopularBrand(name string) bool {
	for _, b := range popularBrands {
		if name == b {
			return true
		}
	}
	return false
}
