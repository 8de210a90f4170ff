package services

import (
	"context"
	"sort"

	"github.com/dealora/dealora-core/internal/app/errors"
	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService assembles the public coupon listing: fetch, join with
// stores, filter, sort, paginate. Everything after the two fetches is a
// pure in-memory transformation.
type CatalogService struct {
	db           *gorm.DB
	storeService *StoreService
	cache        *CatalogCache
}

func NewCatalogService(db *gorm.DB, storeService *StoreService, cache *CatalogCache) *CatalogService {
	return &CatalogService{
		db:           db,
		storeService: storeService,
		cache:        cache,
	}
}

func (s *CatalogService) GetCatalog(ctx context.Context, query *models.CatalogQuery) (*models.Pagination[[]models.CatalogItem], error) {
	query.Normalize()

	if page, ok := s.cache.Get(ctx, query); ok {
		return page, nil
	}

	var coupons []models.Coupon
	if err := s.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get coupons")
	}

	items, err := s.joinStores(coupons)
	if err != nil {
		return nil, err
	}

	items = filterCatalog(items, query)
	sortCatalog(items, query.SortBy)
	page := paginateCatalog(items, query.Page, query.PerPage)

	s.cache.Set(ctx, query, page)
	return page, nil
}

// joinStores attaches each coupon's store projection. Left-join
// semantics: a coupon whose store was deleted keeps its place with a
// nil store, and the input order is preserved.
func (s *CatalogService) joinStores(coupons []models.Coupon) ([]models.CatalogItem, error) {
	seen := make(map[uuid.UUID]bool, len(coupons))
	ids := make([]uuid.UUID, 0, len(coupons))
	for _, coupon := range coupons {
		if coupon.StoreID != uuid.Nil && !seen[coupon.StoreID] {
			seen[coupon.StoreID] = true
			ids = append(ids, coupon.StoreID)
		}
	}

	stores, err := s.storeService.GetStoresByIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0, len(coupons))
	for _, coupon := range coupons {
		item := models.CatalogItem{Coupon: coupon}
		if store, ok := stores[coupon.StoreID]; ok {
			item.Store = s.storeService.Projection(&store)
		}
		item.StoreDisplayName = item.DisplayStoreName()
		items = append(items, item)
	}
	return items, nil
}

// filterCatalog applies the active criteria as a conjunction: every
// predicate narrows the set independently of the others.
func filterCatalog(items []models.CatalogItem, query *models.CatalogQuery) []models.CatalogItem {
	filtered := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if catalogMatch(&item, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func catalogMatch(item *models.CatalogItem, query *models.CatalogQuery) bool {
	switch query.Tab {
	case models.CatalogTabPromo:
		if item.CouponType != models.CouponTypeCoupon {
			return false
		}
	case models.CatalogTabDeal:
		if item.CouponType != models.CouponTypeDeal {
			return false
		}
	}

	if len(query.Categories) > 0 {
		// Coupons without a resolvable store have no categories and
		// are excluded once a category filter is active.
		if item.Store == nil || !intersects(item.Store.Categories, query.Categories) {
			return false
		}
	}

	if query.Verified && !item.Verified {
		return false
	}
	if query.CodesOnly && item.CouponType != models.CouponTypeCoupon {
		return false
	}
	if query.DealsOnly && item.CouponType != models.CouponTypeDeal {
		return false
	}
	if query.FreeShipping && !pkg.IsFreeShipping(item.Discount) {
		return false
	}

	return true
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// sortCatalog reorders in place. Every policy uses a stable sort so
// ties keep the upstream newest-first order.
func sortCatalog(items []models.CatalogItem, policy models.CatalogSort) {
	switch policy {
	case models.CatalogSortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case models.CatalogSortDiscountDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return pkg.DiscountPercent(items[i].Discount) > pkg.DiscountPercent(items[j].Discount)
		})
	case models.CatalogSortDiscountAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return pkg.DiscountPercent(items[i].Discount) < pkg.DiscountPercent(items[j].Discount)
		})
	case models.CatalogSortMostUsed:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Uses > items[j].Uses
		})
	}
	// relevance keeps the upstream order untouched
}

// paginateCatalog slices one page out of the filtered set. An
// out-of-range page clamps to the nearest valid one; it never errors.
func paginateCatalog(items []models.CatalogItem, page, perPage int) *models.Pagination[[]models.CatalogItem] {
	total := len(items)

	totalPages := 1
	if perPage != models.PerPageAll {
		totalPages = (total + perPage - 1) / perPage
		if totalPages < 1 {
			totalPages = 1
		}
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	pageItems := items
	limit := total
	if perPage != models.PerPageAll {
		limit = perPage
		start := (page - 1) * perPage
		end := start + perPage
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		pageItems = items[start:end]
	}

	return &models.Pagination[[]models.CatalogItem]{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Items:      pageItems,
	}
}
