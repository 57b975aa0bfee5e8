package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/pkg/response"
)

type TuningHandler struct {
	repo      *library.Repository
	validator *validator.Validate
}

func NewTuningHandler(repo *library.Repository, v *validator.Validate) *TuningHandler {
	return &TuningHandler{
		repo:      repo,
		validator: v,
	}
}

// List handles GET /tunings
func (h *TuningHandler) List(c *fiber.Ctx) error {
	return response.OK(c, h.repo.Tunings())
}

// Upsert handles POST /tunings. A new tuning gets an empty voicing subtree
// for every chord type and all 12 root notes.
func (h *TuningHandler) Upsert(c *fiber.Ctx) error {
	var req model.Tuning
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	if err := h.repo.UpsertTuning(req); err != nil {
		return respondError(c, err)
	}

	return response.Created(c, req)
}

// Delete handles DELETE /tunings/:name. The tuning's entire voicing subtree
// goes with it.
func (h *TuningHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.DeleteTuning(pathParam(c, "name")); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

// Reorder handles POST /tunings/:name/reorder
func (h *TuningHandler) Reorder(c *fiber.Ctx) error {
	var req model.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	if err := h.repo.ReorderTuning(pathParam(c, "name"), req.Direction); err != nil {
		return respondError(c, err)
	}

	return response.OK(c, h.repo.Tunings())
}
