// Package filters applies list-view predicates and ordering to in-memory
// analysis rows.
package filters

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const All = "all"

type DateRange string

const (
	DateAll   DateRange = All
	DateToday DateRange = "today"
	DateWeek  DateRange = "week"
	DateMonth DateRange = "month"
)

type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByName       SortKey = "name"
	SortByConfidence SortKey = "confidence"
	SortByStatus     SortKey = "status"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type Filters struct {
	SearchTerm string
	Status     string
	Type       string
	DateRange  DateRange
	SortBy     SortKey
	SortOrder  SortOrder
}

// Default matches every row and orders newest first.
func Default() Filters {
	return Filters{
		Status:    All,
		Type:      All,
		DateRange: DateAll,
		SortBy:    SortByDate,
		SortOrder: Desc,
	}
}

// Record is what a row exposes to filtering and sorting.
type Record interface {
	FilterID() string
	FilterType() string
	FilterFileName() string
	FilterName() string
	FilterStatus() string
	FilterConfidence() float64
	FilterDate() time.Time
}

// Validate rejects unknown enum values; empty values mean "not set".
func (f Filters) Validate() error {
	switch f.DateRange {
	case "", DateAll, DateToday, DateWeek, DateMonth:
	default:
		return fmt.Errorf("unknown date range %q", f.DateRange)
	}
	switch f.SortBy {
	case "", SortByDate, SortByName, SortByConfidence, SortByStatus:
	default:
		return fmt.Errorf("unknown sort key %q", f.SortBy)
	}
	switch f.SortOrder {
	case "", Asc, Desc:
	default:
		return fmt.Errorf("unknown sort order %q", f.SortOrder)
	}
	return nil
}

// Apply returns a function that keeps the rows matching every active
// predicate and orders them by f.SortBy. Rows with equal sort keys end up in
// no particular order. The input slice is not modified.
func Apply[T Record](f Filters, now time.Time) func([]T) []T {
	search := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	since, bounded := rangeStart(f.DateRange, now)

	return func(rows []T) []T {
		out := make([]T, 0, len(rows))
		for _, r := range rows {
			if search != "" && !matchesSearch(r, search) {
				continue
			}
			if active(f.Status) && !strings.EqualFold(r.FilterStatus(), f.Status) {
				continue
			}
			if active(f.Type) && !strings.EqualFold(r.FilterType(), f.Type) {
				continue
			}
			if bounded && r.FilterDate().Before(since) {
				continue
			}
			out = append(out, r)
		}

		if less := comparator[T](f.SortBy); less != nil {
			desc := f.SortOrder == Desc
			sort.Slice(out, func(i, j int) bool {
				if desc {
					return less(out[j], out[i])
				}
				return less(out[i], out[j])
			})
		}
		return out
	}
}

func active(v string) bool {
	return v != "" && v != All
}

func matchesSearch(r Record, term string) bool {
	return strings.Contains(strings.ToLower(r.FilterType()), term) ||
		strings.Contains(strings.ToLower(r.FilterID()), term) ||
		strings.Contains(strings.ToLower(r.FilterFileName()), term)
}

func rangeStart(dr DateRange, now time.Time) (time.Time, bool) {
	switch dr {
	case DateToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case DateWeek:
		return now.AddDate(0, 0, -7), true
	case DateMonth:
		return now.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

func comparator[T Record](key SortKey) func(a, b T) bool {
	switch key {
	case SortByDate:
		return func(a, b T) bool { return a.FilterDate().Before(b.FilterDate()) }
	case SortByName:
		return func(a, b T) bool { return strings.ToLower(a.FilterName()) < strings.ToLower(b.FilterName()) }
	case SortByConfidence:
		return func(a, b T) bool { return a.FilterConfidence() < b.FilterConfidence() }
	case SortByStatus:
		return func(a, b T) bool { return a.FilterStatus() < b.FilterStatus() }
	}
	return nil
}
