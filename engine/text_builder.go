package engine

import (
	"fmt"
	"strings"
)

// BuildSummary describes the classification in one line, e.g.
// "Classified 3 of 4 stars: Class I 2 (66.7%), Class V 1 (33.3%)".
// Empty buckets are left out of the sentence.
func BuildSummary(total int, buckets []Bucket) string {
	classified := TotalCount(buckets)
	if total == 0 {
		return "No stars to classify."
	}

	parts := make([]string, 0, len(buckets))
	for _, b := range buckets {
		if b.Count == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)", b.Label, FormatInt(b.Count), FormatPercent(b.Count, classified)))
	}

	line := fmt.Sprintf("Classified %s of %s stars", FormatInt(classified), FormatInt(total))
	if len(parts) == 0 {
		return line + "."
	}
	return line + ": " + strings.Join(parts, ", ")
}
