package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/MOYARU/urt/internal/score"
)

type TriagePolicy struct {
	Threshold     float64
	TopSuspicious int
	Output        string
}

var triagePolicyCache struct {
	mu      sync.RWMutex
	path    string
	exists  bool
	modTime int64
	policy  TriagePolicy
}

func DefaultTriagePolicy() TriagePolicy {
	return TriagePolicy{
		Threshold:     score.DefaultThreshold,
		TopSuspicious: 10,
		Output:        "results.csv",
	}
}

// LoadTriagePolicy reads optional top-level keys from ".urt.yaml":
// threshold: 0.5
// top_suspicious: 10
// output: results.csv
func LoadTriagePolicy() TriagePolicy {
	p := DefaultTriagePolicy()
	path := ".urt.yaml"
	absPath, err := filepath.Abs(path)
	if err == nil {
		path = absPath
	}

	st, statErr := os.Stat(path)
	if statErr != nil {
		triagePolicyCache.mu.RLock()
		if triagePolicyCache.path == path && !triagePolicyCache.exists {
			cached := triagePolicyCache.policy
			triagePolicyCache.mu.RUnlock()
			return cached
		}
		triagePolicyCache.mu.RUnlock()
		triagePolicyCache.mu.Lock()
		triagePolicyCache.path = path
		triagePolicyCache.exists = false
		triagePolicyCache.modTime = 0
		triagePolicyCache.policy = p
		triagePolicyCache.mu.Unlock()
		return p
	}

	modTime := st.ModTime().UnixNano()
	triagePolicyCache.mu.RLock()
	if triagePolicyCache.path == path && triagePolicyCache.exists && triagePolicyCache.modTime == modTime {
		cached := triagePolicyCache.policy
		triagePolicyCache.mu.RUnlock()
		return cached
	}
	triagePolicyCache.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return p
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.Trim(strings.TrimSpace(kv[1]), `"'`)

		switch key {
		case "threshold":
			if n, err := strconv.ParseFloat(val, 64); err == nil && n >= 0 && n <= 1 {
				p.Threshold = n
			}
		case "top_suspicious":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				p.TopSuspicious = n
			}
		case "output":
			if val != "" {
				p.Output = val
			}
		}
	}

	triagePolicyCache.mu.Lock()
	triagePolicyCache.path = path
	triagePolicyCache.exists = true
	triagePolicyCache.modTime = modTime
	triagePolicyCache.policy = p
	triagePolicyCache.mu.Unlock()

	return p
}
