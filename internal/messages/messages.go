package messages

import (
	"fmt"
	"strings"
)

type ReasonDetail struct {
	Title   string
	Message string
}

// reasonMessages explains each heuristic reason tag for the console report.
// Parameterized tags like many_hyphens(3) are looked up by their base name.
var reasonMessages = map[string]ReasonDetail{
	"parse_error": {
		Title:   "Unparseable URL",
		Message: "The URL could not be parsed. Input that cannot be analyzed is treated as maximally suspicious.",
	},
	"ip_in_host": {
		Title:   "IP Address Host",
		Message: "The host is a raw dotted-quad address instead of a domain name. Phishing pages are often served straight from an IP to avoid domain takedowns.",
	},
	"many_hyphens": {
		Title:   "Hyphen-Heavy Host",
		Message: "The host contains three or more hyphens. Long hyphenated hosts are typical of throwaway lookalike domains.",
	},
	"@_in_url": {
		Title:   "Embedded '@' Character",
		Message: "The URL contains an '@'. Browsers treat everything before it as credentials, which lets an attacker hide the real destination host.",
	},
	"long_url": {
		Title:   "Unusually Long URL",
		Message: "The URL exceeds 75 characters. Excessive length is used to push the real host out of the visible address bar.",
	},
	"suspicious_keyword": {
		Title:   "Credential-Bait Keyword",
		Message: "The path or query contains a keyword commonly used on credential-harvesting pages (login, verify, account, ...).",
	},
	"misspelled_brand_like": {
		Title:   "Brand Look-Alike Host",
		Message: "The host's base name closely resembles a well-known brand without matching it exactly, the classic typosquatting pattern.",
	},
	"no_https": {
		Title:   "No Transport Security",
		Message: "The URL uses plain http. Legitimate sign-in pages are served over HTTPS.",
	},
}

var uiMessages = map[string]string{
	"InputFile":                   "Input: %s",
	"OutputFile":                  "Output: %s",
	"Threshold":                   "Classification threshold: %.2f",
	"TriageComplete":              "Triage complete.",
	"TriageCancelled":             "\nTriage cancelled by user.",
	"NoURLs":                      "No URLs found in %s (blank lines and # comments are skipped).",
	"SummaryLine":                 "Analyzed %d URLs -> phishing: %d, benign: %d",
	"ResultsWritten":              "Results written to: %s",
	"ConsoleNoSuspicious":         "No URLs crossed the phishing threshold.",
	"ConsoleTopTitle":             "=== Most Suspicious URLs ===",
	"ConsoleMoreResults":          "... and %d more flagged URLs (see %s)",
	"ConsoleDomainsTitle":         "=== Flagged Registered Domains ===",
	"ConsoleReasonLabel":          "Reasons",
	"ConsoleScoreLabel":           "Score",
	"AskOverwrite":                "Output file %s already exists. Overwrite?",
	"TriageAborted":               "Triage aborted.",
	"JSONReportSaved":             "JSON report saved: %s",
	"JSONReportFailed":            "Failed to save JSON report: %v",
	"InteractiveWelcome":          "Interactive mode. Type 'help' for commands, 'exit' to quit.",
	"InteractiveExit":             "Bye.",
	"InteractiveHelp":             "Available commands:",
	"InteractiveErrorUnknown":     "Unknown command: %s",
	"InteractiveErrorUnknownFlag": "Unknown flag: %s",
	"InteractiveErrorInput":       "Usage: %s <input_file> [flags]",
	"InteractiveTriageFailed":     "Triage failed: %v",
	"InteractiveScoreUsage":       "Usage: score <url>",
}

// GetReasonDetail resolves a reason tag, including parameterized forms such
// as many_hyphens(4) or misspelled_brand_like(paypal).
func GetReasonDetail(tag string) ReasonDetail {
	base := tag
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	if d, ok := reasonMessages[base]; ok {
		return d
	}
	return ReasonDetail{
		Title:   tag,
		Message: fmt.Sprintf("No description registered for reason '%s'.", tag),
	}
}

func GetUIMessage(id string, args ...interface{}) string {
	format, ok := uiMessages[id]
	if !ok || format == "" {
		return id
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
