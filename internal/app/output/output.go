package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MOYARU/urt/internal/app/ui"
	msges "github.com/MOYARU/urt/internal/messages"
	"github.com/MOYARU/urt/internal/report"
	"github.com/MOYARU/urt/internal/score"
)

// PrintProgress updates the current triage progress on the same line.
func PrintProgress(current, total int, url string) {
	if total <= 0 {
		fmt.Printf("\r [------------------------------] 0%% [0/0]\033[K")
		return
	}

	percentage := float64(current) / float64(total) * 100
	// Truncate the URL to prevent line wrapping
	if len(url) > 50 {
		url = url[:47] + "..."
	}
	width := 30
	filled := int(float64(width) * (float64(current) / float64(total)))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	fmt.Printf("\r [%s] %.0f%% [%d/%d]: %s\033[K", bar, percentage, current, total, url)
}

// PrintResults prints the highest-scoring flagged URLs with the reasons that
// fired, most suspicious first.
func PrintResults(results []report.Result, top int, outputPath string) {
	var flagged []report.Result
	for _, r := range results {
		if r.Label == score.LabelPhishing {
			flagged = append(flagged, r)
		}
	}
	if len(flagged) == 0 {
		fmt.Printf("%s%s%s\n", ui.ColorGreen, msges.GetUIMessage("ConsoleNoSuspicious"), ui.ColorReset)
		return
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		if flagged[i].Score == flagged[j].Score {
			return flagged[i].URL < flagged[j].URL
		}
		return flagged[i].Score > flagged[j].Score
	})

	if top < 1 {
		top = len(flagged)
	}
	limit := len(flagged)
	if limit > top {
		limit = top
	}

	fmt.Printf("\n%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("ConsoleTopTitle"), ui.ColorReset)
	for _, r := range flagged[:limit] {
		band := report.BandFor(r.Score)
		fmt.Printf("\n%s[%s] (%s) %s%s\n", bandColor(band), band, FormatScore(r.Score), r.URL, ui.ColorReset)
		for _, tag := range r.Reasons {
			detail := msges.GetReasonDetail(tag)
			fmt.Printf("%s - %s (%s): %s%s\n", ui.ColorGray, tag, detail.Title, detail.Message, ui.ColorReset)
		}
	}

	if remaining := len(flagged) - limit; remaining > 0 {
		fmt.Printf("\n%s%s%s\n", ui.ColorGray, msges.GetUIMessage("ConsoleMoreResults", remaining, outputPath), ui.ColorReset)
	}
}

// PrintDomainRollup prints flagged counts grouped by registered domain.
func PrintDomainRollup(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	type domainCount struct {
		Domain string
		Count  int
	}
	rollup := make([]domainCount, 0, len(counts))
	for d, c := range counts {
		rollup = append(rollup, domainCount{Domain: d, Count: c})
	}
	sort.Slice(rollup, func(i, j int) bool {
		if rollup[i].Count == rollup[j].Count {
			return rollup[i].Domain < rollup[j].Domain
		}
		return rollup[i].Count > rollup[j].Count
	})

	const maxRollupRows = 10
	limit := len(rollup)
	if limit > maxRollupRows {
		limit = maxRollupRows
	}

	fmt.Printf("\n%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("ConsoleDomainsTitle"), ui.ColorReset)
	for _, item := range rollup[:limit] {
		if item.Count > 1 {
			fmt.Printf(" - %s (x%d)\n", item.Domain, item.Count)
		} else {
			fmt.Printf(" - %s\n", item.Domain)
		}
	}
}

// PrintSummary prints the one-line batch summary and the output location.
func PrintSummary(sum report.Summary, outputPath string) {
	fmt.Printf("\n%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("SummaryLine", sum.Total, sum.Phishing, sum.Benign), ui.ColorReset)
	fmt.Printf("%s%s%s\n", ui.ColorGray, msges.GetUIMessage("ResultsWritten", outputPath), ui.ColorReset)
}

// WriteCSV serializes results as url,score,label,reason rows.
func WriteCSV(path string, results []report.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"url", "score", "label", "reason"}); err != nil {
		f.Close()
		return err
	}
	for _, r := range results {
		row := []string{r.URL, FormatScore(r.Score), r.Label, r.ReasonString()}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatScore renders a score without trailing zeros (0.52, not 0.520).
func FormatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func SaveJSONReport(inputPath string, threshold float64, results []report.Result, startTime, endTime time.Time) error {
	type JSONReport struct {
		Input     string          `json:"input"`
		StartTime time.Time       `json:"start_time"`
		EndTime   time.Time       `json:"end_time"`
		Threshold float64         `json:"threshold"`
		Summary   report.Summary  `json:"summary"`
		Results   []report.Result `json:"results"`
	}

	reportData := JSONReport{
		Input:     inputPath,
		StartTime: startTime,
		EndTime:   endTime,
		Threshold: threshold,
		Summary:   report.Summarize(results),
		Results:   results,
	}

	timestamp := time.Now().Format("20060102_150405")
	sanitizedInput := strings.ReplaceAll(filepath.Base(inputPath), ".", "_")

	filename := fmt.Sprintf("urt_report_%s_%s.json", sanitizedInput, timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reportData); err != nil {
		return err
	}

	fmt.Printf("\n%s\n", msges.GetUIMessage("JSONReportSaved", filename))
	return nil
}

func bandColor(b report.Band) string {
	switch b {
	case report.BandHigh:
		return ui.ColorHigh
	case report.BandMedium:
		return ui.ColorMedium
	case report.BandLow:
		return ui.ColorLow
	default:
		return ui.ColorClean
	}
}
