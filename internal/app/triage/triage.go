package triage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MOYARU/urt/internal/app/output"
	"github.com/MOYARU/urt/internal/app/ui"
	"github.com/MOYARU/urt/internal/input"
	msges "github.com/MOYARU/urt/internal/messages"
	"github.com/MOYARU/urt/internal/report"
	"github.com/MOYARU/urt/internal/score"
	"golang.org/x/net/publicsuffix"
)

// RunTriage scores every URL in the input file, writes the CSV, and prints
// the console report. Scoring is a single synchronous pass: each URL is pure
// string work, so there is no latency to hide behind workers. With
// allowPrompts set, an existing output file must be confirmed before it is
// overwritten.
func RunTriage(inputPath, outputPath string, threshold float64, top int, jsonOutput bool, allowPrompts bool) error {
	urls, err := input.ReadURLList(inputPath)
	if err != nil {
		return err
	}

	if allowPrompts && outputExists(outputPath) {
		confirmed, err := ui.Confirm(msges.GetUIMessage("AskOverwrite", outputPath))
		if err != nil || !confirmed {
			fmt.Printf("%s%s%s\n", ui.ColorYellow, msges.GetUIMessage("TriageAborted"), ui.ColorReset)
			return fmt.Errorf("triage aborted by user")
		}
	}

	ctx, cancel := ui.WaitForCancel(context.Background())
	defer cancel()

	fmt.Printf("%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("InputFile", inputPath), ui.ColorReset)
	fmt.Printf("%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("OutputFile", outputPath), ui.ColorReset)
	fmt.Printf("%s%s%s\n", ui.ColorGray, msges.GetUIMessage("Threshold", threshold), ui.ColorReset)

	if len(urls) == 0 {
		fmt.Printf("%s%s%s\n", ui.ColorYellow, msges.GetUIMessage("NoURLs", inputPath), ui.ColorReset)
	}

	startTime := time.Now()
	results := make([]report.Result, 0, len(urls))
	output.PrintProgress(0, len(urls), "")
	for i, raw := range urls {
		if ctx.Err() != nil {
			fmt.Printf("%s%s%s\n", ui.ColorYellow, msges.GetUIMessage("TriageCancelled"), ui.ColorReset)
			return nil
		}

		value, reasons := score.Score(raw)
		results = append(results, report.Result{
			URL:     raw,
			Score:   value,
			Label:   score.Label(value, threshold),
			Reasons: reasons,
		})
		output.PrintProgress(i+1, len(urls), raw)
	}
	endTime := time.Now()

	fmt.Printf("\n\n%s%s%s\n", ui.ColorGreen, msges.GetUIMessage("TriageComplete"), ui.ColorReset)

	output.PrintResults(results, top, outputPath)
	output.PrintDomainRollup(flaggedDomainCounts(results))

	if err := output.WriteCSV(outputPath, results); err != nil {
		return fmt.Errorf("write results to %s: %w", outputPath, err)
	}
	output.PrintSummary(report.Summarize(results), outputPath)

	if jsonOutput {
		if err := output.SaveJSONReport(inputPath, threshold, results, startTime, endTime); err != nil {
			fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("JSONReportFailed", err), ui.ColorReset)
		}
	}
	return nil
}

func outputExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// flaggedDomainCounts groups phishing-labeled results by registered domain
// so repeat offenders stand out in the summary.
func flaggedDomainCounts(results []report.Result) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		if r.Label != score.LabelPhishing {
			continue
		}
		if domain := rootDomainFromURL(r.URL); domain != "" {
			counts[domain]++
		}
	}
	return counts
}

func rootDomainFromURL(rawURL string) string {
	target := rawURL
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}
	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return root
}
