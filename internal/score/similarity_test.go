package score

import (
	"math"
	"testing"
)

func TestSimilarityRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"paypal", "paypal", 1.0},
		{"paypa1", "paypal", 10.0 / 12.0},
		{"gooogle", "google", 12.0 / 13.0},
		{"example", "apple", 8.0 / 12.0},
		{"abc", "", 0},
		{"", "", 1.0},
	}
	for _, tc := range cases {
		if got := similarityRatio(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("similarityRatio(%q, %q)=%v want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClosestBrand(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"paypa1", "paypal"},
		{"gooogle", "google"},
		{"gooble", "google"},
		{"amaz0n", "amazon"},
		{"google", "google"},
		{"example", ""},
		{"xyz", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := closestBrand(tc.name); got != tc.want {
			t.Fatalf("closestBrand(%q)=%q want %q", tc.name, got, tc.want)
		}
	}
}
