package api

import (
	"github.com/droidhub/backend/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func startPoster(c *fiber.Ctx) error {
	if err := services.StartPoster(); err != nil {
		return err
	}

	return c.SendString("Poster started")
}
