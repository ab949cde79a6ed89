package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/service"
)

// GetPage returns a page singleton by slug.
func GetPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("slug"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpsertPage creates the page on first edit or replaces its content. Inline
// image payloads in the body are converted before the write.
func UpsertPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.Page
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		p.Slug = c.Params("slug")

		stored, err := svc.Upsert(c.UserContext(), &p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeletePage removes a page and queues its assets for deletion.
func DeletePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("slug")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
