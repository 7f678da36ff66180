package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/mozilla-b2g/dogdish/internal/updates"
)

// UpdateHandler serves the update manifest.
type UpdateHandler struct {
	Registry *updates.Registry
	Renderer *updates.Renderer
}

// Manifest handles GET /. Every request triggers a rescan so a freshly
// dropped artifact is picked up without restarting the server.
func (h *UpdateHandler) Manifest(c *fiber.Ctx) error {
	if err := h.Registry.Scan(); err != nil {
		// Keep serving the last-known-good update set.
		log.Printf("rescan failed: %v", err)
	}
	current := h.Registry.Current()
	if current == nil {
		return fiber.ErrNotFound
	}
	body, err := h.Renderer.Render(current, c.Query("dogfood_id"))
	if err != nil {
		log.Printf("render manifest for %s: %v", current.Filename, err)
		return fiber.ErrInternalServerError
	}
	c.Set(fiber.HeaderContentType, "text/xml")
	return c.SendString(body)
}

// NotFound answers every unrecognized path or method with no further detail.
func NotFound(c *fiber.Ctx) error {
	return fiber.ErrNotFound
}
