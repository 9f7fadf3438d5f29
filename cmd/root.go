/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/MOYARU/urt/internal/app/interactive"
	"github.com/MOYARU/urt/internal/app/triage"
	"github.com/MOYARU/urt/internal/app/ui"
	"github.com/MOYARU/urt/internal/config"
	"github.com/MOYARU/urt/internal/score"
	appver "github.com/MOYARU/urt/internal/version"
	"github.com/spf13/cobra"
)

var (
	version = appver.Value

	outputPath string
	threshold  float64
	topResults int
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "urt [input_file]",
	Short: "URT is an offline batch triage tool that assigns a heuristic suspicion score to each URL in a list and classifies it as phishing or benign using lexical and structural signals, without any network lookups.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			interactive.RunInteractiveMode(cmd)
			return
		}

		policy := config.LoadTriagePolicy()
		out := outputPath
		if out == "" {
			out = policy.Output
		}
		th := policy.Threshold
		if cmd.Flags().Changed("threshold") {
			th = threshold
		}
		top := topResults
		if top == 0 {
			top = policy.TopSuspicious
		}

		err := triage.RunTriage(args[0], out, th, top, jsonOutput, false)
		if err != nil {
			fmt.Printf("%sTriage failed: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			os.Exit(1)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
func init() {
	rootCmd.Version = version

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path (default: results.csv)")
	rootCmd.Flags().Float64Var(&threshold, "threshold", score.DefaultThreshold, "Score at or above which a URL is labeled phishing")
	rootCmd.Flags().IntVar(&topResults, "top", 0, "Maximum flagged URLs shown in the console report (default: 10)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Also save a JSON report")

	rootCmd.Long = ui.AsciiArt + `
URT is a lightweight, offline URL risk triage tool.

Usage:
   urt [input_file] [flags]

Example:
  urt urls.txt
  urt urls.txt -o triage.csv
  urt urls.txt --threshold 0.65 --json

  score http://paypa1.com/login

Flags:
  --output, -o         Output CSV path (default: results.csv)
  --threshold          Classification threshold (default: 0.5)
  --top                Maximum flagged URLs shown in the console report
  --json               Also save a JSON report

The input file holds one URL per line; blank lines and lines starting with '#' are skipped.
This tool performs no network requests: every score is derived from the URL string alone.
`
}
