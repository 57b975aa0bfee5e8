package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fretstudio/api/internal/model"
)

// ExportFilter selects which entities a snapshot includes. A nil slice
// selects everything; an empty slice selects nothing.
type ExportFilter struct {
	Scales     []string
	ChordTypes []string
	Tunings    []string
}

func (f ExportFilter) wantScale(name string) bool     { return wantName(f.Scales, name) }
func (f ExportFilter) wantChordType(name string) bool { return wantName(f.ChordTypes, name) }
func (f ExportFilter) wantTuning(name string) bool    { return wantName(f.Tunings, name) }

func wantName(filter []string, name string) bool {
	if filter == nil {
		return true
	}
	for _, n := range filter {
		if n == name {
			return true
		}
	}
	return false
}

// Export produces a deep-copied snapshot of the selected entities. The
// voicing tree is narrowed to the selected tunings and chord types; root
// notes are never filtered.
func (r *Repository) Export(f ExportFilter) *model.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now().UTC()
	snap := &model.Snapshot{
		ID:         uuid.NewString(),
		ExportedAt: &now,
		Scales:     []model.Scale{},
		ChordTypes: []model.ChordType{},
		Tunings:    []model.Tuning{},
		Voicings:   make(model.VoicingTree),
	}
	for _, s := range r.scales {
		if f.wantScale(s.Name) {
			snap.Scales = append(snap.Scales, copyScale(s))
		}
	}
	for _, ct := range r.chordTypes {
		if f.wantChordType(ct.Name) {
			snap.ChordTypes = append(snap.ChordTypes, copyChordType(ct))
		}
	}
	for _, t := range r.tunings {
		if f.wantTuning(t.Name) {
			snap.Tunings = append(snap.Tunings, copyTuning(t))
		}
	}
	for tuningName, byType := range r.buildTree() {
		if !f.wantTuning(tuningName) {
			continue
		}
		for typeName, byRoot := range byType {
			if !f.wantChordType(typeName) {
				continue
			}
			if snap.Voicings[tuningName] == nil {
				snap.Voicings[tuningName] = make(map[string]map[string]model.ChordVoicings)
			}
			snap.Voicings[tuningName][typeName] = byRoot
		}
	}
	return snap
}

// NormalizeSnapshot canonicalizes case-only variants in place before
// validation, so an incoming snapshot is held to the same rules as the
// entity endpoints: voicing difficulties are lower-cased.
func NormalizeSnapshot(snap *model.Snapshot) {
	if snap == nil {
		return
	}
	for _, byType := range snap.Voicings {
		for _, byRoot := range byType {
			for _, leaf := range byRoot {
				for i := range leaf.Voicings {
					leaf.Voicings[i].Difficulty = model.Difficulty(
						strings.ToLower(string(leaf.Voicings[i].Difficulty)))
				}
			}
		}
	}
}

// ValidateSnapshot checks an incoming snapshot against the full entity
// schema before any mutation is attempted. A failure wraps
// ErrInvalidSnapshot and leaves the library untouched.
func ValidateSnapshot(v *validator.Validate, snap *model.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: empty payload", ErrInvalidSnapshot)
	}
	if err := v.Struct(snap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for tuningName, byType := range snap.Voicings {
		if tuningName == "" {
			return fmt.Errorf("%w: voicing tree has empty tuning name", ErrInvalidSnapshot)
		}
		for typeName, byRoot := range byType {
			if typeName == "" {
				return fmt.Errorf("%w: voicing tree has empty chord type name", ErrInvalidSnapshot)
			}
			for rootSym, leaf := range byRoot {
				if _, err := model.ParsePitchClass(rootSym); err != nil {
					return fmt.Errorf("%w: voicing root %q under %s/%s: %v",
						ErrInvalidSnapshot, rootSym, tuningName, typeName, err)
				}
				for _, voicing := range leaf.Voicings {
					if err := v.Struct(voicing); err != nil {
						return fmt.Errorf("%w: voicing %q under %s/%s/%s: %v",
							ErrInvalidSnapshot, voicing.Name, tuningName, typeName, rootSym, err)
					}
				}
			}
		}
	}
	return nil
}
