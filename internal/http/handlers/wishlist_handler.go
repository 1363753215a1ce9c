package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ramgate/internal/log"
	"ramgate/internal/services"
	"ramgate/internal/validate"
)

type WishlistHandler struct {
	Identity  *services.IdentityService
	Favorites *services.FavoritesService
}

type toggleInput struct {
	RamUserID string `json:"ram_user_id"`
	ProductID int64  `json:"product_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Toggle handles POST /api/ram/wishlist/toggle. Unlike the cart flow, email
// is optional for auto-provisioning here, mirroring the OAuth login flow.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var in toggleInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo de solicitud invalido")
	}
	extID, ok := validate.ExternalID(in.RamUserID)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ram_user_id requerido")
	}
	if in.ProductID <= 0 {
		return fail(c, fiber.StatusBadRequest, "product_id requerido")
	}
	email := ""
	if in.Email != "" {
		e, ok := validate.Email(in.Email)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "email invalido")
		}
		email = e
	}

	customer, err := h.Identity.ResolveOrCreate(services.ProvisionParams{
		ExternalID: extID,
		Email:      email,
		FirstName:  validate.Name(in.FirstName),
		LastName:   validate.Name(in.LastName),
	}, false)
	if err != nil || customer == nil {
		if err != nil && !errors.Is(err, services.ErrCustomerUnresolvable) {
			applog.Error(c, "wishlist.toggle.resolve.fail", err, map[string]any{"ram_user_id": extID})
		}
		return fail(c, fiber.StatusBadRequest, "No se pudo resolver el cliente")
	}

	favorited, err := h.Favorites.Toggle(customer, in.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return fail(c, fiber.StatusBadRequest, "Producto no encontrado")
		case errors.Is(err, services.ErrProductUnavailable):
			return fail(c, fiber.StatusBadRequest, "Producto no disponible")
		default:
			applog.Error(c, "wishlist.toggle.fail", err, map[string]any{"product": in.ProductID})
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
	}

	msg := "Producto agregado a favoritos"
	if !favorited {
		msg = "Producto eliminado de favoritos"
	}
	applog.Audit(c, "wishlist.toggle", map[string]any{
		"ram_user_id": extID, "product": in.ProductID, "favorited": favorited,
	})
	return c.JSON(fiber.Map{
		"success":   true,
		"favorited": favorited,
		"message":   msg,
	})
}

// Index handles GET /api/ram/wishlist. An unresolved user gets empty lists,
// not an error.
func (h *WishlistHandler) Index(c *fiber.Ctx) error {
	extID, ok := validate.ExternalID(c.Query("ram_user_id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ram_user_id requerido")
	}
	withDetails := c.QueryBool("with_details")

	customer, err := h.Identity.Resolve(extID)
	if err != nil {
		applog.Error(c, "wishlist.index.fail", err, map[string]any{"ram_user_id": extID})
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if customer == nil {
		return c.JSON(fiber.Map{
			"success":     true,
			"product_ids": []int64{},
			"products":    []any{},
		})
	}

	ids, cards, err := h.Favorites.List(customer, withDetails)
	if err != nil {
		applog.Error(c, "wishlist.index.fail", err, map[string]any{"ram_user_id": extID})
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if !withDetails {
		return c.JSON(fiber.Map{"success": true, "product_ids": ids})
	}
	return c.JSON(fiber.Map{"success": true, "product_ids": ids, "products": cards})
}
