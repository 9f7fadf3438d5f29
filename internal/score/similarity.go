package score

const brandSimilarityCutoff = 0.8

// closestBrand returns the best-matching popular brand for name, or "" when
// no brand reaches the similarity cutoff. Ties keep the earliest brand in
// the list.
func closestBrand(name string) string {
	best := ""
	bestRatio := 0.0
	for _, brand := range popularBrands {
		if r := similarityRatio(name, brand); r >= brandSimilarityCutoff && r > bestRatio {
			best, bestRatio = brand, r
		}
	}
	return best
}

// similarityRatio is the classic sequence-matcher measure: twice the number
// of characters covered by the longest matching blocks, over the combined
// length of both strings. 1.0 means identical.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	return 2 * float64(matchingChars(a, b)) / float64(len(a)+len(b))
}

// matchingChars counts the longest matching block and recurses into the
// unmatched regions on either side of it.
func matchingChars(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchingChars(a[:ai], b[:bi]) + matchingChars(a[ai+size:], b[bi+size:])
}

// longestMatch locates the longest common substring, preferring the earliest
// position in a and then in b on ties.
func longestMatch(a, b string) (aStart, bStart, size int) {
	prev := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		cur := make([]int, len(b)+1)
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				k := prev[j-1] + 1
				cur[j] = k
				if k > size {
					aStart, bStart, size = i-k, j-k, k
				}
			}
		}
		prev = cur
	}
	return aStart, bStart, size
}
