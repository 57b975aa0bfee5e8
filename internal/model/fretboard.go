package model

// FretboardNote annotates a single (string, fret) cell. IntervalDegree is
// the note's 1-based position within the scale context, nil when the note is
// outside the scale or no scale context applies.
type FretboardNote struct {
	Note           PitchClass `json:"note"`
	IsInScale      bool       `json:"is_in_scale"`
	IsRoot         bool       `json:"is_root"`
	IsInChord      bool       `json:"is_in_chord"`
	IntervalDegree *int       `json:"interval_degree,omitempty"`
}

// Fretboard maps conventional string numbers (1 = highest-pitched string)
// to the notes at frets 0..N, fret 0 being the open string.
type Fretboard map[int][]FretboardNote

// ChordVisualization is the chord-view response: the annotated grid plus the
// recorded voicings for the chord under the requested tuning.
type ChordVisualization struct {
	Fretboard Fretboard `json:"fretboard"`
	Voicings  []Voicing `json:"voicings"`
}
