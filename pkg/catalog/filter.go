package catalog

import (
	"regexp"
	"strings"
)

// CategoryAll disables category/specialty filtering.
const CategoryAll = "All"

// FilterTemplates returns the subsequence of items whose category equals the
// selector (or all, for "All") AND whose searchable fields contain the query
// as a case-insensitive substring. Pure and synchronous; an empty query
// matches everything. Filtering is idempotent: re-applying the same
// selector/query to a result set returns the identical set.
func FilterTemplates(items []Template, category, query string) []Template {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Template, 0, len(items))
	for _, t := range items {
		if category != "" && category != CategoryAll && t.Category != category {
			continue
		}
		if q != "" && !containsFold(q, t.Name, t.Category, t.Description) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterLawyers applies the same selector/substring semantics over the
// lawyer listing, searching name, specialty and location.
func FilterLawyers(items []Lawyer, specialty, query string) []Lawyer {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Lawyer, 0, len(items))
	for _, l := range items {
		if specialty != "" && specialty != CategoryAll && l.Specialty != specialty {
			continue
		}
		if q != "" && !containsFold(q, l.Name, l.Specialty, l.Location) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DownloadFilename derives the attachment name for a template download:
// whitespace runs become underscores, plus a plain-text extension.
func DownloadFilename(name string) string {
	return whitespaceRun.ReplaceAllString(name, "_") + ".txt"
}
