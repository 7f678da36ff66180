package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mozilla-b2g/dogdish/internal/server/handlers"
)

// RegisterRoutes wires the single manifest endpoint. Any other path or method
// is a plain 404.
func RegisterRoutes(app *fiber.App, h *handlers.UpdateHandler) {
	app.Get("/", h.Manifest)
	app.All("/*", handlers.NotFound)
}
