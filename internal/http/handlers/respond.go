package handlers

import "github.com/gofiber/fiber/v2"

// fail is the uniform error shape for the partner API.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}
