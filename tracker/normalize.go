package tracker

import "strings"

// NormalizeTags trims each tag, drops empties, and removes duplicates
// while preserving first-occurrence order. Returns nil when nothing
// survives, so an empty tag set is stored as absent.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
