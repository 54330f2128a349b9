// Package catalog filters, sorts and paginates book collections. It is
// pure and storage-agnostic: the in-memory repository runs it directly,
// the postgres repository mirrors the same semantics in SQL.
package catalog

import (
	"sort"
	"strings"

	"github.com/VirakOTAKU/book-selling-platform/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// AllCategories disables the category filter.
	AllCategories = "all"
)

type Params struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Normalize clamps page/limit to sane values without erroring: callers
// passing garbage get the defaults, oversized limits get capped.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// Query applies category and search filters (AND-composed), sorts
// newest-first with insertion order as the tie-break, and slices out
// the requested page. total is the filtered count before pagination.
func Query(items []model.Book, p Params) (page []model.Book, total int) {
	p = p.Normalize()

	kept := make([]model.Book, 0, len(items))
	for _, b := range items {
		if !matches(b, p) {
			continue
		}
		kept = append(kept, b)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].CreatedAt.After(kept[j].CreatedAt)
	})

	total = len(kept)
	off := p.Offset()
	if off >= total {
		return []model.Book{}, total
	}
	end := off + p.Limit
	if end > total {
		end = total
	}
	return kept[off:end], total
}

func matches(b model.Book, p Params) bool {
	if p.Category != "" && p.Category != AllCategories && b.Category != p.Category {
		return false
	}
	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(b.Title), needle) &&
			!strings.Contains(strings.ToLower(b.Author), needle) &&
			!(b.ISBN != "" && strings.Contains(strings.ToLower(b.ISBN), needle)) {
			return false
		}
	}
	return true
}

// Pages converts a filtered total into a page count for the response
// envelope.
func Pages(total, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
