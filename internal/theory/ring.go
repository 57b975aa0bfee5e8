// Package theory implements the music-theory computations: pitch-class ring
// arithmetic, interval projection, diatonic chord derivation, and fretboard
// rendering. Everything here is pure and operates on in-memory data.
package theory

import "github.com/fretstudio/api/internal/model"

var ringIndex = func() map[model.PitchClass]int {
	m := make(map[model.PitchClass]int, model.PitchClassCount)
	for i, pc := range model.PitchClasses {
		m[pc] = i
	}
	return m
}()

// Index returns the ring position of a pitch class in [0, 12). The symbol is
// matched case-insensitively; an unknown symbol yields ErrUnknownPitchClass.
func Index(pc model.PitchClass) (int, error) {
	canonical, err := model.ParsePitchClass(string(pc))
	if err != nil {
		return 0, err
	}
	return ringIndex[canonical], nil
}

// At returns the pitch class at ring position i, taken mod 12. Negative
// positions wrap correctly.
func At(i int) model.PitchClass {
	i %= model.PitchClassCount
	if i < 0 {
		i += model.PitchClassCount
	}
	return model.PitchClasses[i]
}
