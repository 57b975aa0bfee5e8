package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/internal/service"
	"github.com/fretstudio/api/pkg/response"
)

type SnapshotHandler struct {
	service *service.SnapshotService
}

func NewSnapshotHandler(svc *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{service: svc}
}

// Export handles GET /library/export. Comma-separated name filters narrow
// the snapshot; an absent parameter selects everything of that kind, a
// present-but-empty one selects nothing.
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	snap := h.service.Export(
		nameFilter(c, "scales"),
		nameFilter(c, "chord-types"),
		nameFilter(c, "tunings"),
	)
	return response.OK(c, snap)
}

// Import handles POST /library/import?mode=replace|merge. The snapshot is
// validated in full before anything is applied.
func (h *SnapshotHandler) Import(c *fiber.Ctx) error {
	mode := model.ImportMode(c.Query("mode", string(model.ImportMerge)))
	if mode != model.ImportReplace && mode != model.ImportMerge {
		return response.ValidationError(c, "mode must be 'replace' or 'merge'", nil)
	}

	var snap model.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.service.Import(&snap, mode); err != nil {
		return respondError(c, err)
	}

	return response.OK(c, fiber.Map{"message": "Library imported.", "mode": mode})
}

// nameFilter splits a comma-separated query value. An absent parameter
// yields a nil filter (select all); a present parameter with no names yields
// an empty filter (select none).
func nameFilter(c *fiber.Ctx, key string) []string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	parts := strings.Split(c.Query(key), ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
