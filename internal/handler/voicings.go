package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/pkg/response"
)

type VoicingHandler struct {
	repo      *library.Repository
	validator *validator.Validate
}

func NewVoicingHandler(repo *library.Repository, v *validator.Validate) *VoicingHandler {
	return &VoicingHandler{
		repo:      repo,
		validator: v,
	}
}

// List handles GET /voicings/:tuning/:chordType/:root
func (h *VoicingHandler) List(c *fiber.Ctx) error {
	voicings, err := h.repo.Voicings(
		pathParam(c, "tuning"),
		pathParam(c, "chordType"),
		model.PitchClass(pathParam(c, "root")),
	)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, voicings)
}

// Upsert handles POST /voicings/:tuning/:chordType/:root. A voicing with a
// matching name is replaced in place; otherwise the voicing is appended.
func (h *VoicingHandler) Upsert(c *fiber.Ctx) error {
	var req model.Voicing
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	req.Difficulty = model.Difficulty(strings.ToLower(string(req.Difficulty)))
	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	err := h.repo.UpsertVoicing(
		pathParam(c, "tuning"),
		pathParam(c, "chordType"),
		model.PitchClass(pathParam(c, "root")),
		req,
	)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, req)
}

// Delete handles DELETE /voicings/:tuning/:chordType/:root/:name
func (h *VoicingHandler) Delete(c *fiber.Ctx) error {
	err := h.repo.DeleteVoicing(
		pathParam(c, "tuning"),
		pathParam(c, "chordType"),
		model.PitchClass(pathParam(c, "root")),
		pathParam(c, "name"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

// Reorder handles POST /voicings/:tuning/:chordType/:root/:name/reorder.
// Moving past either end of the list succeeds without changing anything.
func (h *VoicingHandler) Reorder(c *fiber.Ctx) error {
	var req model.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	err := h.repo.ReorderVoicing(
		pathParam(c, "tuning"),
		pathParam(c, "chordType"),
		model.PitchClass(pathParam(c, "root")),
		pathParam(c, "name"),
		req.Direction,
	)
	if err != nil {
		return respondError(c, err)
	}

	voicings, err := h.repo.Voicings(
		pathParam(c, "tuning"),
		pathParam(c, "chordType"),
		model.PitchClass(pathParam(c, "root")),
	)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, voicings)
}
