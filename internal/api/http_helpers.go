package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Every response carries the {data, error} envelope; exactly one of the
// two is non-null.
func dataResponse(c *fiber.Ctx, payload any) error {
	return c.JSON(fiber.Map{"data": payload, "error": nil})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"data": nil, "error": message})
}

func parseIDParam(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(parsed), nil
}

func parseStudentIDQuery(c *fiber.Ctx) (uint, error) {
	raw := c.Query("student_id")
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "student_id required")
	}
	return parseIDParam(raw)
}
