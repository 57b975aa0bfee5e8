package handler

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/pkg/response"
)

// respondError maps core errors to HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrUnknownPitchClass):
		return response.ValidationError(c, err.Error(), nil)
	case errors.Is(err, library.ErrInvalidDirection):
		return response.ValidationError(c, err.Error(), nil)
	case errors.Is(err, library.ErrInvalidSnapshot):
		return response.InvalidSnapshot(c, err.Error())
	case errors.Is(err, library.ErrScaleNotFound),
		errors.Is(err, library.ErrChordTypeNotFound),
		errors.Is(err, library.ErrTuningNotFound),
		errors.Is(err, library.ErrVoicingNotFound),
		errors.Is(err, library.ErrPathNotFound):
		return response.NotFound(c, err.Error())
	default:
		return response.ServiceError(c, err.Error())
	}
}

// pathParam returns a decoded route parameter; names like "Standard Guitar"
// arrive percent-encoded.
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
