package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MOYARU/urt/internal/report"
)

func TestWriteCSV(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "results.csv")

	results := []report.Result{
		{
			URL:     "http://192.168.1.1/login",
			Score:   0.52,
			Label:   "phishing",
			Reasons: []string{"ip_in_host", "suspicious_keyword", "no_https"},
		},
		{
			URL:   "https://google.com/",
			Score: 0,
			Label: "benign",
		},
	}
	if err := WriteCSV(path, results); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	want := "url,score,label,reason\n" +
		"http://192.168.1.1/login,0.52,phishing,ip_in_host|suspicious_keyword|no_https\n" +
		"https://google.com/,0,benign,\n"
	if string(raw) != want {
		t.Fatalf("unexpected CSV:\n%s\nwant:\n%s", raw, want)
	}
}

func TestWriteCSVEmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(raw) != "url,score,label,reason\n" {
		t.Fatalf("unexpected CSV: %q", raw)
	}
}

func TestFormatScore(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.52, "0.52"},
		{0.005, "0.005"},
		{1, "1"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatScore(tc.in); got != tc.want {
			t.Fatalf("FormatScore(%v)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestSaveJSONReportSummaryCounts(t *testing.T) {
	tmp := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir(tmp) error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	results := []report.Result{
		{URL: "http://a.test/login", Score: 0.52, Label: "phishing"},
		{URL: "https://b.test/", Score: 0.05, Label: "benign"},
		{URL: "https://c.test/", Score: 0, Label: "benign"},
	}

	start := time.Now().Add(-time.Second)
	end := time.Now()
	if err := SaveJSONReport("urls.txt", 0.5, results, start, end); err != nil {
		t.Fatalf("SaveJSONReport() error: %v", err)
	}

	files, err := filepath.Glob("urt_report_*.json")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 report file, got %d: %v", len(files), files)
	}

	raw, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	var doc struct {
		Threshold float64 `json:"threshold"`
		Summary   struct {
			Phishing int `json:"phishing"`
			Benign   int `json:"benign"`
			Total    int `json:"total"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if doc.Threshold != 0.5 {
		t.Fatalf("unexpected threshold: %v", doc.Threshold)
	}
	if doc.Summary.Phishing != 1 || doc.Summary.Benign != 2 || doc.Summary.Total != 3 {
		t.Fatalf("unexpected summary: %+v", doc.Summary)
	}
}
