package models

import (
	"fmt"
	"sort"
	"strings"
)

type CatalogTab string

const (
	CatalogTabAll   CatalogTab = "all"
	CatalogTabPromo CatalogTab = "promo"
	CatalogTabDeal  CatalogTab = "deal"
)

type CatalogSort string

const (
	CatalogSortRelevance    CatalogSort = "relevance"
	CatalogSortNewest       CatalogSort = "newest"
	CatalogSortDiscountDesc CatalogSort = "discount_desc"
	CatalogSortDiscountAsc  CatalogSort = "discount_asc"
	CatalogSortMostUsed     CatalogSort = "most_used"
)

// PerPageAll requests the whole result set as a single page.
const PerPageAll = -1

var allowedPerPage = map[int]bool{5: true, 10: true, 20: true, 50: true, PerPageAll: true}

type CatalogQuery struct {
	Tab          CatalogTab  `json:"tab"`
	Categories   []string    `json:"categories,omitempty"`
	Verified     bool        `json:"verified"`
	CodesOnly    bool        `json:"codesOnly"`
	DealsOnly    bool        `json:"dealsOnly"`
	FreeShipping bool        `json:"freeShipping"`
	SortBy       CatalogSort `json:"sortBy"`
	Page         int         `json:"page"`
	PerPage      int         `json:"perPage"`
}

// Normalize fills defaults and coerces out-of-range values instead of
// rejecting them: a bad query parameter falls back, it never errors.
func (q *CatalogQuery) Normalize() {
	switch q.Tab {
	case CatalogTabAll, CatalogTabPromo, CatalogTabDeal:
	default:
		q.Tab = CatalogTabAll
	}

	switch q.SortBy {
	case CatalogSortRelevance, CatalogSortNewest, CatalogSortDiscountDesc,
		CatalogSortDiscountAsc, CatalogSortMostUsed:
	default:
		q.SortBy = CatalogSortRelevance
	}

	if !allowedPerPage[q.PerPage] {
		q.PerPage = 10
	}
	if q.Page < 1 {
		q.Page = 1
	}
}

// CacheKey is a stable identifier for this query; category order does
// not matter.
func (q *CatalogQuery) CacheKey() string {
	categories := append([]string(nil), q.Categories...)
	sort.Strings(categories)
	return fmt.Sprintf("%s:%s:%t:%t:%t:%t:%s:%d:%d",
		q.Tab, strings.Join(categories, ","),
		q.Verified, q.CodesOnly, q.DealsOnly, q.FreeShipping,
		q.SortBy, q.Page, q.PerPage)
}
