package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ramgate/internal/log"
	"ramgate/internal/services"
	"ramgate/internal/validate"
)

type CartHandler struct {
	Identity *services.IdentityService
	Cart     *services.CartService
}

type cartAddInput struct {
	RamUserID string `json:"ram_user_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Add handles POST /api/ram/cart/add. The cart flow requires an email for
// auto-provisioning unseen users.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in cartAddInput
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
	}, true)
	if err != nil {
		if errors.Is(err, services.ErrCustomerUnresolvable) {
			return fail(c, fiber.StatusBadRequest, "No se pudo resolver el cliente")
		}
		applog.Error(c, "cart.add.resolve.fail", err, map[string]any{"ram_user_id": extID})
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if customer == nil {
		return fail(c, fiber.StatusBadRequest, "No se pudo resolver el cliente")
	}

	count, err := h.Cart.AddItem(customer, in.ProductID, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return fail(c, fiber.StatusBadRequest, "Producto no encontrado")
		case errors.Is(err, services.ErrProductUnavailable):
			return fail(c, fiber.StatusBadRequest, "Producto no disponible")
		default:
			applog.Error(c, "cart.add.fail", err, map[string]any{"product": in.ProductID})
			// Trusted server-to-server integration: surface the engine message.
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
	}

	applog.Audit(c, "cart.add", map[string]any{"ram_user_id": extID, "product": in.ProductID})
	return c.JSON(fiber.Map{
		"success":    true,
		"cart_count": count,
		"message":    "Producto agregado al carrito",
	})
}

// Count handles GET /api/ram/cart/count. An unresolved user is not an error;
// it simply has zero items.
func (h *CartHandler) Count(c *fiber.Ctx) error {
	extID, ok := validate.ExternalID(c.Query("ram_user_id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ram_user_id requerido")
	}
	customer, err := h.Identity.Resolve(extID)
	if err != nil {
		applog.Error(c, "cart.count.fail", err, map[string]any{"ram_user_id": extID})
		return c.JSON(fiber.Map{"count": 0})
	}
	return c.JSON(fiber.Map{"count": h.Cart.Count(customer)})
}
