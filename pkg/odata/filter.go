package odata

import "strings"

// CombineFilters joins all non-empty filter expressions with " and ".
// Expressions are taken verbatim; the library does not validate or
// sanitize OData filter syntax.
func CombineFilters(filter string, extra ...string) string {
	parts := make([]string, 0, 1+len(extra))
	if strings.TrimSpace(filter) != "" {
		parts = append(parts, filter)
	}
	for _, f := range extra {
		if strings.TrimSpace(f) != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " and ")
}
