package service

import (
	"fmt"

	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/model"
	"github.com/fretstudio/api/internal/theory"
)

// TheoryService answers the computed, read-only questions: note spellings,
// diatonic chord listings, and fretboard grids. Everything is recomputed per
// request from the library's current definitions.
type TheoryService struct {
	repo *library.Repository
}

func NewTheoryService(repo *library.Repository) *TheoryService {
	return &TheoryService{repo: repo}
}

// ChordNotes spells a chord from its type's absolute intervals.
func (s *TheoryService) ChordNotes(root, chordTypeName string) ([]model.PitchClass, error) {
	ct, err := s.repo.ChordType(chordTypeName)
	if err != nil {
		return nil, err
	}
	rootPC, err := model.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	return theory.Project(rootPC, ct.Intervals, model.IntervalAbsolute)
}

// ScaleNotes spells a scale from its chained intervals.
func (s *TheoryService) ScaleNotes(root, scaleName string) ([]model.PitchClass, error) {
	scale, err := s.repo.Scale(scaleName)
	if err != nil {
		return nil, err
	}
	rootPC, err := model.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	return theory.Project(rootPC, scale.Intervals, model.IntervalChained)
}

// DiatonicChords lists the "Root Type" labels of chords diatonic to a scale.
// Chord type names the scale allows but the library no longer knows are
// skipped. When tuningName is given, chords with no recorded voicing under
// that tuning are excluded.
func (s *TheoryService) DiatonicChords(root, scaleName, tuningName string) ([]string, error) {
	scale, err := s.repo.Scale(scaleName)
	if err != nil {
		return nil, err
	}
	rootPC, err := model.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	scaleNotes, err := theory.Project(rootPC, scale.Intervals, model.IntervalChained)
	if err != nil {
		return nil, err
	}

	chordTypes := make([]model.ChordType, 0, len(scale.AllowedChordTypes))
	for _, name := range scale.AllowedChordTypes {
		ct, err := s.repo.ChordType(name)
		if err != nil {
			continue
		}
		chordTypes = append(chordTypes, ct)
	}

	var filter theory.VoicingFilter
	if tuningName != "" {
		if _, err := s.repo.Tuning(tuningName); err != nil {
			return nil, err
		}
		filter = func(chordType string, chordRoot model.PitchClass) bool {
			return s.repo.HasVoicings(tuningName, chordType, chordRoot)
		}
	}

	chords := theory.DiatonicChords(scaleNotes, chordTypes, filter)
	labels := make([]string, 0, len(chords))
	for _, ch := range chords {
		labels = append(labels, fmt.Sprintf("%s %s", ch.Root, ch.ChordType))
	}
	return labels, nil
}

// ScaleFretboard renders the scale view: every cell annotated with scale
// membership, root flag, and scale degree.
func (s *TheoryService) ScaleFretboard(tuningName, root, scaleName string, numFrets int) (model.Fretboard, error) {
	tuning, err := s.repo.Tuning(tuningName)
	if err != nil {
		return nil, err
	}
	scaleNotes, err := s.ScaleNotes(root, scaleName)
	if err != nil {
		return nil, err
	}
	rootPC, err := model.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	return theory.RenderFretboard(tuning, numFrets, classifier(rootPC, scaleNotes, nil))
}

// ChordFretboard renders the chord view: chord membership on top of an
// optional scale context, plus the chord's recorded voicings for the tuning.
func (s *TheoryService) ChordFretboard(tuningName, root, chordTypeName, scaleName string, numFrets int) (*model.ChordVisualization, error) {
	tuning, err := s.repo.Tuning(tuningName)
	if err != nil {
		return nil, err
	}
	ct, err := s.repo.ChordType(chordTypeName)
	if err != nil {
		return nil, err
	}
	rootPC, err := model.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	chordNotes, err := theory.Project(rootPC, ct.Intervals, model.IntervalAbsolute)
	if err != nil {
		return nil, err
	}

	var scaleNotes []model.PitchClass
	if scaleName != "" {
		scaleNotes, err = s.ScaleNotes(root, scaleName)
		if err != nil {
			return nil, err
		}
	}

	board, err := theory.RenderFretboard(tuning, numFrets, classifier(rootPC, scaleNotes, chordNotes))
	if err != nil {
		return nil, err
	}
	voicings, err := s.repo.Voicings(tuningName, ct.Name, rootPC)
	if err != nil {
		return nil, err
	}
	return &model.ChordVisualization{Fretboard: board, Voicings: voicings}, nil
}

// classifier builds the note-classification function injected into the
// renderer. Degree is the 1-based position within the scale spelling.
func classifier(root model.PitchClass, scaleNotes, chordNotes []model.PitchClass) theory.Classifier {
	degree := make(map[model.PitchClass]int, len(scaleNotes))
	for i, n := range scaleNotes {
		if _, ok := degree[n]; !ok {
			degree[n] = i + 1
		}
	}
	inChord := make(map[model.PitchClass]bool, len(chordNotes))
	for _, n := range chordNotes {
		inChord[n] = true
	}
	return func(pc model.PitchClass, fret, stringIdx int) model.FretboardNote {
		note := model.FretboardNote{
			Note:      pc,
			IsRoot:    pc == root,
			IsInChord: inChord[pc],
		}
		if d, ok := degree[pc]; ok {
			note.IsInScale = true
			deg := d
			note.IntervalDegree = &deg
		}
		return note
	}
}
