package report

import (
	"strings"

	"github.com/MOYARU/urt/internal/score"
)

// Result is one scored URL row, consumed by the CSV writer, the console
// printer, and the JSON report.
type Result struct {
	URL     string   `json:"url"`
	Score   float64  `json:"score"`
	Label   string   `json:"label"`
	Reasons []string `json:"reasons"`
}

// ReasonString joins the reason tags for the CSV "reason" column.
func (r Result) ReasonString() string {
	return strings.Join(r.Reasons, "|")
}

type Band string

// Console presentation buckets. Bands never influence the phishing/benign
// label, which is purely threshold-based.
const (
	BandHigh   Band = "HIGH"
	BandMedium Band = "MEDIUM"
	BandLow    Band = "LOW"
	BandClean  Band = "CLEAN"
)

func BandFor(value float64) Band {
	switch {
	case value >= 0.75:
		return BandHigh
	case value >= 0.5:
		return BandMedium
	case value >= 0.25:
		return BandLow
	default:
		return BandClean
	}
}

// Summary holds the per-label counts for one batch run.
type Summary struct {
	Phishing int `json:"phishing"`
	Benign   int `json:"benign"`
	Total    int `json:"total"`
}

func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Label {
		case score.LabelPhishing:
			s.Phishing++
		case score.LabelBenign:
			s.Benign++
		}
	}
	s.Total = len(results)
	return s
}
