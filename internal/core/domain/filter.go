package domain

import "strings"

// MatchesSearch reports whether a campaign name contains the query. Both
// sides are lower-cased and trimmed; an empty query matches everything.
func MatchesSearch(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(strings.TrimSpace(name)), q)
}

// Filter picks the status bucket and keeps the campaigns whose name
// matches the query.
func Filter(buckets StatusBuckets, status StatusFilter, query string) []Campaign {
	bucket := buckets.Bucket(status)
	out := make([]Campaign, 0, len(bucket))
	for _, c := range bucket {
		if MatchesSearch(c.Name, query) {
			out = append(out, c)
		}
	}
	return out
}
