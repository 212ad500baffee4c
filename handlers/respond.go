package handlers

import (
	"errors"
	"log"

	"github.com/Handsol/nbc-final-project/services"
	"github.com/Handsol/nbc-final-project/storage"
	"github.com/gofiber/fiber/v2"
)

// serviceError dịch lỗi từ tầng service sang HTTP status.
// Lỗi store không lọt chi tiết ra client, chỉ log phía server.
func serviceError(c *fiber.Ctx, err error, kind, fallback string) error {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(403).JSON(fiber.Map{"error": "authentication required"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": "you do not have permission to modify this " + kind})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": kind + " not found"})
	case errors.As(err, &validationErr):
		return c.Status(400).JSON(fiber.Map{"error": validationErr.Message})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(500).JSON(fiber.Map{"error": fallback})
	}
}
