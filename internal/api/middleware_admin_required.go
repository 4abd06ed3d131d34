package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	tokenString := c.Cookies(adminCookieName)
	if tokenString == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if err := handler.parseAdminToken(tokenString); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}
