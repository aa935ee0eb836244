package dotenv

import (
	"sort"
	"strings"
)

// Entry is a single listed variable.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// List parses the file at p and returns the variables whose name contains
// keyword, case-insensitively, sorted by key. An empty keyword keeps all
// keys. The store is never modified.
func (l *Loader) List(p, keyword string) ([]Entry, error) {
	vars, _, err := l.Read(p)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	entries := make([]Entry, 0, len(vars))
	for _, k := range sortedKeys(vars) {
		if needle != "" && !strings.Contains(strings.ToLower(k), needle) {
			continue
		}
		entries = append(entries, Entry{Key: k, Value: vars[k]})
	}
	return entries, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
