package model

import (
	"errors"
	"fmt"
	"strings"
)

// PitchClass is one of the 12 chromatic pitch classes, spelled with sharps.
// Equality is symbolic: C# and Db are distinct spellings and only the sharp
// form is part of the alphabet.
type PitchClass string

const (
	NoteC      PitchClass = "C"
	NoteCSharp PitchClass = "C#"
	NoteD      PitchClass = "D"
	NoteDSharp PitchClass = "D#"
	NoteE      PitchClass = "E"
	NoteF      PitchClass = "F"
	NoteFSharp PitchClass = "F#"
	NoteG      PitchClass = "G"
	NoteGSharp PitchClass = "G#"
	NoteA      PitchClass = "A"
	NoteASharp PitchClass = "A#"
	NoteB      PitchClass = "B"
)

// PitchClasses lists the chromatic cycle in ascending order starting at C.
// Index positions in this slice are the canonical ring indices.
var PitchClasses = []PitchClass{
	NoteC, NoteCSharp, NoteD, NoteDSharp, NoteE, NoteF,
	NoteFSharp, NoteG, NoteGSharp, NoteA, NoteASharp, NoteB,
}

// PitchClassCount is the size of the chromatic cycle.
const PitchClassCount = 12

// ErrUnknownPitchClass is returned when a note symbol is outside the
// 12-class alphabet.
var ErrUnknownPitchClass = errors.New("unknown pitch class")

// ParsePitchClass resolves a note symbol case-insensitively against the
// canonical sharp spellings.
func ParsePitchClass(s string) (PitchClass, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, pc := range PitchClasses {
		if string(pc) == upper {
			return pc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPitchClass, s)
}
