package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ramgate/internal/log"
	"ramgate/internal/services"
)

type ProductsHandler struct {
	Catalog *services.CatalogService
}

// Popular handles GET /api/ram/products/popular. The limit echoes back the
// clamped value actually applied, not the raw request.
func (h *ProductsHandler) Popular(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 24)
	offset := c.QueryInt("offset", 0)

	cards, total, applied, err := h.Catalog.Popular(limit, offset)
	if err != nil {
		applog.Error(c, "products.popular.fail", err, nil)
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if offset < 0 {
		offset = 0
	}
	return c.JSON(fiber.Map{
		"data": cards,
		"meta": fiber.Map{
			"total":  total,
			"limit":  applied,
			"offset": offset,
		},
	})
}
