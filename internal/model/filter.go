package model

import (
	"net/url"

	"github.com/spf13/cast"
)

// ListFilter is the common query filter used by entity list screens.
type ListFilter struct {
	Search    string
	Category  string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Values maps the filter to query parameter names. Zero page/limit are
// omitted entirely so the server applies its own defaults.
func (f ListFilter) Values() map[string]any {
	values := map[string]any{
		"search":    f.Search,
		"category":  f.Category,
		"status":    f.Status,
		"sortBy":    f.SortBy,
		"sortOrder": f.SortOrder,
	}
	if f.Page > 0 {
		values["page"] = f.Page
	}
	if f.Limit > 0 {
		values["limit"] = f.Limit
	}
	return values
}

// Query returns the cleaned url.Values for the filter.
func (f ListFilter) Query() url.Values {
	return CleanFilters(f.Values())
}

// CleanFilters strips the sentinel "no-op" values ("all", empty string, nil)
// so the server treats a missing key as "no filter". Everything else is
// string-coerced into query values.
func CleanFilters(filters map[string]any) url.Values {
	cleaned := url.Values{}
	for key, value := range filters {
		if value == nil {
			continue
		}
		s := cast.ToString(value)
		if s == "" || s == "all" {
			continue
		}
		cleaned.Set(key, s)
	}
	return cleaned
}
