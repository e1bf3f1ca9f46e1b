package api

import (
	"github.com/droidhub/backend/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func search(c *fiber.Ctx) error {
	probe := c.Query("q")
	if len(probe) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "query is required")
	}

	switch target := c.Query("target", "all"); target {
	case "all", "users":
		users, err := services.GetUsersByName(probe)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"users": users,
		})
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown search target")
	}
}
