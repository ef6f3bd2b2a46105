package handlers

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// GET /healthz
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        "ok",
		"cache_entries": h.q.Cache().Len(),
	})
}

// HandleVersion reports the configured version and the module build info.
// GET /version
func (h *Handler) HandleVersion(c *fiber.Ctx) error {
	data := fiber.Map{"version": h.opts.Version}
	if info, ok := debug.ReadBuildInfo(); ok {
		data["go"] = info.GoVersion
		data["module"] = info.Main.Path
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				data["revision"] = s.Value
			}
		}
	}
	return c.JSON(fiber.Map{"status": "success", "data": data})
}
