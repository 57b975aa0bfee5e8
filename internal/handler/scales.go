package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/pkg/response"
)

type ScaleHandler struct {
	repo      *library.Repository
	validator *validator.Validate
}

func NewScaleHandler(repo *library.Repository, v *validator.Validate) *ScaleHandler {
	return &ScaleHandler{
		repo:      repo,
		validator: v,
	}
}

// List handles GET /scales
func (h *ScaleHandler) List(c *fiber.Ctx) error {
	return response.OK(c, h.repo.Scales())
}

// Upsert handles POST /scales
func (h *ScaleHandler) Upsert(c *fiber.Ctx) error {
	var req model.Scale
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	if err := h.repo.UpsertScale(req); err != nil {
		return respondError(c, err)
	}

	return response.Created(c, req)
}

// Delete handles DELETE /scales/:name
func (h *ScaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.DeleteScale(pathParam(c, "name")); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

// Reorder handles POST /scales/:name/reorder
func (h *ScaleHandler) Reorder(c *fiber.Ctx) error {
	var req model.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	if err := h.repo.ReorderScale(pathParam(c, "name"), req.Direction); err != nil {
		return respondError(c, err)
	}

	return response.OK(c, h.repo.Scales())
}
