package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
)

// SnapshotService handles library export and import.
type SnapshotService struct {
	repo     *library.Repository
	validate *validator.Validate
}

func NewSnapshotService(repo *library.Repository, v *validator.Validate) *SnapshotService {
	return &SnapshotService{repo: repo, validate: v}
}

// Export returns a snapshot narrowed to the selected names. Nil selectors
// mean "everything".
func (s *SnapshotService) Export(scales, chordTypes, tunings []string) *model.Snapshot {
	return s.repo.Export(library.ExportFilter{
		Scales:     scales,
		ChordTypes: chordTypes,
		Tunings:    tunings,
	})
}

// Import normalizes and validates the snapshot against the full entity
// schema, then applies it under the requested mode. Validation failure leaves
// the library untouched.
func (s *SnapshotService) Import(snap *model.Snapshot, mode model.ImportMode) error {
	library.NormalizeSnapshot(snap)
	if err := library.ValidateSnapshot(s.validate, snap); err != nil {
		return err
	}
	return s.repo.Import(snap, mode)
}
