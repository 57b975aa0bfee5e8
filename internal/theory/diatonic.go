package theory

import "github.com/fretstudio/api/internal/model"

// DiatonicChord is one (root, chord type) pair fully contained in a scale.
type DiatonicChord struct {
	Root      model.PitchClass
	ChordType string
}

// VoicingFilter reports whether at least one voicing is recorded for a
// chord. When supplied to DiatonicChords, chords without voicings are
// excluded from the listing.
type VoicingFilter func(chordType string, root model.PitchClass) bool

// DiatonicChords enumerates the chords that can be built on the notes of a
// scale using only notes of that scale. Every scale note is a candidate
// root; every chord type is projected from it (absolute intervals) and kept
// if its pitch-class set is contained in the scale's. Results keep scale
// order for roots and caller order for chord types, deduplicated by pair.
func DiatonicChords(scaleNotes []model.PitchClass, chordTypes []model.ChordType, hasVoicing VoicingFilter) []DiatonicChord {
	inScale := make(map[model.PitchClass]bool, len(scaleNotes))
	for _, n := range scaleNotes {
		inScale[n] = true
	}

	seen := make(map[DiatonicChord]bool)
	chords := make([]DiatonicChord, 0, len(scaleNotes))
	for _, root := range scaleNotes {
		for _, ct := range chordTypes {
			pair := DiatonicChord{Root: root, ChordType: ct.Name}
			if seen[pair] {
				continue
			}
			notes, err := Project(root, ct.Intervals, model.IntervalAbsolute)
			if err != nil {
				continue
			}
			contained := true
			for _, n := range notes {
				if !inScale[n] {
					contained = false
					break
				}
			}
			if !contained {
				continue
			}
			if hasVoicing != nil && !hasVoicing(ct.Name, root) {
				continue
			}
			seen[pair] = true
			chords = append(chords, pair)
		}
	}
	return chords
}
