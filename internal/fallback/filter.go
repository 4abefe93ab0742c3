package fallback

import "strings"

// matchText is the case-insensitive contains used for search filters; an
// empty needle matches everything.
func matchText(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchExact compares a filter value against a field; empty and "all" are
// no-ops, mirroring the cleaned-filter contract of the remote layer.
func matchExact(value, filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return value == filter
}

// statusLabel renders an active flag the way the filter dropdowns do.
func statusLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// pageBounds clamps a page/limit pair onto a list length. Zero limit means
// everything.
func pageBounds(total, page, limit int) (int, int) {
	if limit <= 0 {
		return 0, total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
