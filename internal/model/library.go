package model

// Scale is a named scale definition. Intervals are chained semitone steps
// (IntervalChained); the last step returns to the octave. AllowedChordTypes
// restricts which chord templates may be considered diatonic under the scale.
type Scale struct {
	Name              string   `json:"name" validate:"required"`
	Intervals         []int    `json:"intervals" validate:"required,min=1,dive,min=1,max=12"`
	AllowedChordTypes []string `json:"allowed_chord_types" validate:"omitempty,dive,required"`
}

// ChordType is a named chord template. Intervals are absolute semitone
// offsets from the root, 0-based (IntervalAbsolute); the leading 0 is the
// root itself.
type ChordType struct {
	Name      string `json:"name" validate:"required"`
	Intervals []int  `json:"intervals" validate:"required,min=1,dive,min=0,max=11"`
}

// Tuning is an ordered set of open-string pitches, lowest string first.
type Tuning struct {
	Name  string       `json:"name" validate:"required"`
	Notes []PitchClass `json:"notes" validate:"required,min=1,dive,oneof=C C# D D# E F F# G G# A A# B"`
}

// FingerPosition is one entry of a voicing's fingering geometry.
// Fret -1 means the string is muted, 0 means open. Finger is optional.
type FingerPosition struct {
	String int  `json:"string" validate:"min=1"`
	Fret   int  `json:"fret" validate:"min=-1"`
	Finger *int `json:"finger,omitempty" validate:"omitempty,min=1,max=4"`
}

// Voicing is a concrete, named way to play a chord.
type Voicing struct {
	Name       string           `json:"name" validate:"required"`
	Difficulty Difficulty       `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Fingering  []FingerPosition `json:"fingering" validate:"required,min=1,dive"`
}

// ChordVoicings is a voicing-library leaf: the display name for a
// (root, chord type) pair plus its ordered voicings.
type ChordVoicings struct {
	Name     string    `json:"name"`
	Voicings []Voicing `json:"voicings"`
}

// ReorderRequest moves a named entry one position up or down.
type ReorderRequest struct {
	Direction Direction `json:"direction" validate:"required,oneof=up down"`
}
