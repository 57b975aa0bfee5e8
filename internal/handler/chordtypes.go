package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/pkg/response"
)

type ChordTypeHandler struct {
	repo      *library.Repository
	validator *validator.Validate
}

func NewChordTypeHandler(repo *library.Repository, v *validator.Validate) *ChordTypeHandler {
	return &ChordTypeHandler{
		repo:      repo,
		validator: v,
	}
}

// List handles GET /chord-types
func (h *ChordTypeHandler) List(c *fiber.Ctx) error {
	return response.OK(c, h.repo.ChordTypes())
}

// Upsert handles POST /chord-types. The name is case-normalized and the
// voicing subtree is initialized under every tuning.
func (h *ChordTypeHandler) Upsert(c *fiber.Ctx) error {
	var req model.ChordType
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	if err := h.repo.UpsertChordType(req); err != nil {
		return respondError(c, err)
	}

	req.Name = library.NormalizeChordTypeName(req.Name)
	return response.Created(c, req)
}

// Delete handles DELETE /chord-types/:name
func (h *ChordTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.DeleteChordType(pathParam(c, "name")); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

// Reorder handles POST /chord-types/:name/reorder
func (h *ChordTypeHandler) Reorder(c *fiber.Ctx) error {
	var req model.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	if err := h.repo.ReorderChordType(pathParam(c, "name"), req.Direction); err != nil {
		return respondError(c, err)
	}

	return response.OK(c, h.repo.ChordTypes())
}
