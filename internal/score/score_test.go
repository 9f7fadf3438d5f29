package score

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestScoreSignalTable(t *testing.T) {
	cases := []struct {
		name        string
		url         string
		wantScore   float64
		wantReasons []string
	}{
		{
			name:        "ip host with keyword over http",
			url:         "http://192.168.1.1/login",
			wantScore:   0.52,
			wantReasons: []string{"ip_in_host", "suspicious_keyword", "no_https"},
		},
		{
			name:        "lenient ip pattern accepts groups above 255",
			url:         "999.999.999.999/update",
			wantScore:   0.52,
			wantReasons: []string{"ip_in_host", "suspicious_keyword", "no_https"},
		},
		{
			name:        "brand lookalike one character off",
			url:         "http://paypa1.com/",
			wantScore:   0.27,
			wantReasons: []string{"misspelled_brand_like(paypal)", "no_https"},
		},
		{
			name:        "brand lookalike repeated letter",
			url:         "http://gooogle.com/",
			wantScore:   0.27,
			wantReasons: []string{"misspelled_brand_like(google)", "no_https"},
		},
		{
			name:        "exact brand clamps below zero",
			url:         "https://google.com/",
			wantScore:   0,
			wantReasons: nil,
		},
		{
			name:        "exact brand with port stripped",
			url:         "https://paypal.com:8080/",
			wantScore:   0,
			wantReasons: nil,
		},
		{
			name:        "at symbol anywhere in the url",
			url:         "https://example.com/a@b",
			wantScore:   0.25,
			wantReasons: []string{"@_in_url"},
		},
		{
			name:        "one or two hyphens add weight without a reason",
			url:         "https://my-site.com/",
			wantScore:   0.05,
			wantReasons: nil,
		},
		{
			name:        "long url",
			url:         "https://example.com/" + strings.Repeat("a", 70),
			wantScore:   0.05,
			wantReasons: []string{"long_url"},
		},
	}

	for _, tc := range cases {
		got, reasons := Score(tc.url)
		if got != tc.wantScore {
			t.Fatalf("%s: Score(%q)=%v want %v (reasons %v)", tc.name, tc.url, got, tc.wantScore, reasons)
		}
		if !reflect.DeepEqual(reasons, tc.wantReasons) {
			t.Fatalf("%s: Score(%q) reasons=%v want %v", tc.name, tc.url, reasons, tc.wantReasons)
		}
	}
}

func TestScoreParseFailureIsMaximal(t *testing.T) {
	got, reasons := Score("http://exa mple.com/")
	if got != 1.0 {
		t.Fatalf("Score()=%v want 1.0", got)
	}
	if !reflect.DeepEqual(reasons, []string{"parse_error"}) {
		t.Fatalf("reasons=%v want [parse_error]", reasons)
	}
}

func TestScoreReasonOrderWithAllSignals(t *testing.T) {
	raw := "http://login-secure-verify-update.paypa1.com/account/update?next=admin@example.com&session=abcdef0123456789"
	got, reasons := Score(raw)
	if got != 0.92 {
		t.Fatalf("Score(%q)=%v want 0.92", raw, got)
	}
	want := []string{
		"many_hyphens(3)",
		"@_in_url",
		"long_url",
		"suspicious_keyword",
		"misspelled_brand_like(paypal)",
		"no_https",
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Fatalf("reasons=%v want %v", reasons, want)
	}
}

func TestScoreBoundsAndRounding(t *testing.T) {
	inputs := []string{
		"http://192.168.1.1/login",
		"http://login-secure-verify-update.paypa1.com/account/update?next=admin@example.com&session=abcdef0123456789",
		"https://google.com/",
		"not a url at all \x7f",
		"example.com",
		"",
	}
	for _, in := range inputs {
		got, _ := Score(in)
		if got < 0 || got > 1 {
			t.Fatalf("Score(%q)=%v out of [0,1]", in, got)
		}
		if rounded := math.Round(got*1000) / 1000; rounded != got {
			t.Fatalf("Score(%q)=%v not rounded to 3 decimals", in, got)
		}
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	raw := "http://secure-login.paypa1.com/webscr?cmd=confirm"
	s1, r1 := Score(raw)
	s2, r2 := Score(raw)
	if s1 != s2 || !reflect.DeepEqual(r1, r2) {
		t.Fatalf("Score not idempotent: (%v,%v) vs (%v,%v)", s1, r1, s2, r2)
	}
}

func TestScoreUppercaseHostMatchesBrand(t *testing.T) {
	got, reasons := Score("HTTP://GOOGLE.COM/")
	if got != 0 {
		t.Fatalf("Score()=%v want 0", got)
	}
	if !reflect.DeepEqual(reasons, []string{"no_https"}) {
		t.Fatalf("reasons=%v want [no_https]", reasons)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		score     float64
		threshold float64
		want      string
	}{
		{0.5, 0.5, LabelPhishing},
		{0.499, 0.5, LabelBenign},
		{1.0, 0.5, LabelPhishing},
		{0.0, 0.5, LabelBenign},
		{0.7, 0.75, LabelBenign},
		{0.75, 0.75, LabelPhishing},
	}
	for _, tc := range cases {
		if got := Label(tc.score, tc.threshold); got != tc.want {
			t.Fatalf("Label(%v, %v)=%q want %q", tc.score, tc.threshold, got, tc.want)
		}
	}
}
