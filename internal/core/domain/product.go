package domain

// Product is a catalog entry: an article (SKU) and the subject it belongs
// to. The catalog is only used for article to subject lookups.
type Product struct {
	Article  int64  `json:"article"`
	SubjName string `json:"subjName"`
}

// SubjectOf returns the subject of an article. The first catalog entry
// wins when an article is listed more than once.
func SubjectOf(article int64, catalog []Product) (string, bool) {
	for _, p := range catalog {
		if p.Article == article {
			return p.SubjName, true
		}
	}
	return "", false
}

// SubjectNames returns the distinct subject names in first-seen catalog
// order.
func SubjectNames(catalog []Product) []string {
	seen := make(map[string]struct{}, len(catalog))
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		if _, ok := seen[p.SubjName]; ok {
			continue
		}
		seen[p.SubjName] = struct{}{}
		names = append(names, p.SubjName)
	}
	return names
}
