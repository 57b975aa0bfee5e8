package library

import "errors"

// Sentinel errors surfaced by library operations. Handlers map these to
// response codes with errors.Is.
var (
	ErrScaleNotFound     = errors.New("scale not found")
	ErrChordTypeNotFound = errors.New("chord type not found")
	ErrTuningNotFound    = errors.New("tuning not found")
	ErrVoicingNotFound   = errors.New("voicing not found")
	ErrPathNotFound      = errors.New("voicing path not initialized")
	ErrInvalidDirection  = errors.New("invalid reorder direction")
	ErrInvalidSnapshot   = errors.New("invalid snapshot")
)
