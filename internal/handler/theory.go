package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/service"
	"github.com/fretstudio/api/pkg/response"
)

type TheoryHandler struct {
	service      *service.TheoryService
	defaultFrets int
}

func NewTheoryHandler(svc *service.TheoryService, defaultFrets int) *TheoryHandler {
	return &TheoryHandler{
		service:      svc,
		defaultFrets: defaultFrets,
	}
}

// ChordNotes handles GET /notes/:root/:chordType
func (h *TheoryHandler) ChordNotes(c *fiber.Ctx) error {
	notes, err := h.service.ChordNotes(pathParam(c, "root"), pathParam(c, "chordType"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, notes)
}

// ScaleNotes handles GET /scales/:root/:name/notes
func (h *TheoryHandler) ScaleNotes(c *fiber.Ctx) error {
	notes, err := h.service.ScaleNotes(pathParam(c, "root"), pathParam(c, "name"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, notes)
}

// DiatonicChords handles GET /scales/:root/:name/chords. With a ?tuning=
// query, chords that have no recorded voicing under that tuning are dropped
// from the listing.
func (h *TheoryHandler) DiatonicChords(c *fiber.Ctx) error {
	chords, err := h.service.DiatonicChords(
		pathParam(c, "root"),
		pathParam(c, "name"),
		c.Query("tuning"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, chords)
}

// ScaleFretboard handles GET /fretboard/scale
func (h *TheoryHandler) ScaleFretboard(c *fiber.Ctx) error {
	board, err := h.service.ScaleFretboard(
		c.Query("tuning"),
		c.Query("root"),
		c.Query("scale"),
		h.frets(c),
	)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, board)
}

// ChordFretboard handles GET /fretboard/chord. The ?scale= context is
// optional; without it the grid carries no scale membership.
func (h *TheoryHandler) ChordFretboard(c *fiber.Ctx) error {
	viz, err := h.service.ChordFretboard(
		c.Query("tuning"),
		c.Query("root"),
		c.Query("chord"),
		c.Query("scale"),
		h.frets(c),
	)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, viz)
}

func (h *TheoryHandler) frets(c *fiber.Ctx) int {
	frets := c.QueryInt("frets", h.defaultFrets)
	if frets < 0 {
		frets = 0
	}
	return frets
}
