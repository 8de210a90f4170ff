package deliveries

import (
	"strconv"
	"strings"

	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/dealora/dealora-core/internal/app/pkg"
	"github.com/dealora/dealora-core/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/catalog", h.GetCatalog)
}

func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	query := parseCatalogQuery(c)

	page, err := h.catalogService.GetCatalog(c.Context(), query)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, page)
}

// parseCatalogQuery maps UI query parameters onto a CatalogQuery.
// Malformed values fall back to defaults; the listing never rejects a
// request over a bad filter.
func parseCatalogQuery(c *fiber.Ctx) *models.CatalogQuery {
	query := &models.CatalogQuery{
		Tab:          models.CatalogTab(c.Query("tab", string(models.CatalogTabAll))),
		Verified:     queryBool(c, "verified"),
		CodesOnly:    queryBool(c, "codesOnly"),
		DealsOnly:    queryBool(c, "dealsOnly"),
		FreeShipping: queryBool(c, "freeShipping"),
		SortBy:       models.CatalogSort(c.Query("sortBy", string(models.CatalogSortRelevance))),
	}

	if categories := c.Query("categories"); categories != "" {
		for _, id := range strings.Split(categories, ",") {
			if id = strings.TrimSpace(id); id != "" {
				query.Categories = append(query.Categories, id)
			}
		}
	}

	query.Page, _ = strconv.Atoi(c.Query("page", "1"))

	if perPage := c.Query("perPage", "10"); perPage == "all" {
		query.PerPage = models.PerPageAll
	} else {
		query.PerPage, _ = strconv.Atoi(perPage)
	}

	return query
}

func queryBool(c *fiber.Ctx, name string) bool {
	value, err := strconv.ParseBool(c.Query(name, "false"))
	if err != nil {
		return false
	}
	return value
}
