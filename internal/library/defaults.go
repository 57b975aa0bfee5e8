package library

import "github.com/fretstudio/api/internal/model"

// Defaults returns the library content a fresh install starts with.
func Defaults() State {
	return State{
		Scales: []model.Scale{
			{
				Name:              "Major",
				Intervals:         []int{2, 2, 1, 2, 2, 2, 1},
				AllowedChordTypes: []string{"Major", "Minor", "Diminished", "Major 7", "Minor 7", "Dominant 7"},
			},
			{
				Name:              "Minor",
				Intervals:         []int{2, 1, 2, 2, 1, 2, 2},
				AllowedChordTypes: []string{"Major", "Minor", "Diminished", "Minor 7", "Dominant 7"},
			},
			{
				Name:              "Major Pentatonic",
				Intervals:         []int{2, 2, 3, 2, 3},
				AllowedChordTypes: []string{"Major", "Minor"},
			},
			{
				Name:              "Minor Pentatonic",
				Intervals:         []int{3, 2, 2, 3, 2},
				AllowedChordTypes: []string{"Major", "Minor"},
			},
		},
		ChordTypes: []model.ChordType{
			{Name: "Major", Intervals: []int{0, 4, 7}},
			{Name: "Minor", Intervals: []int{0, 3, 7}},
			{Name: "Diminished", Intervals: []int{0, 3, 6}},
			{Name: "Major 7", Intervals: []int{0, 4, 7, 11}},
			{Name: "Minor 7", Intervals: []int{0, 3, 7, 10}},
			{Name: "Dominant 7", Intervals: []int{0, 4, 7, 10}},
		},
		Tunings: []model.Tuning{
			{
				Name: "Standard Guitar",
				Notes: []model.PitchClass{
					model.NoteE, model.NoteA, model.NoteD,
					model.NoteG, model.NoteB, model.NoteE,
				},
			},
			{
				Name: "Drop D",
				Notes: []model.PitchClass{
					model.NoteD, model.NoteA, model.NoteD,
					model.NoteG, model.NoteB, model.NoteE,
				},
			},
			{
				Name: "Standard Bass",
				Notes: []model.PitchClass{
					model.NoteE, model.NoteA, model.NoteD, model.NoteG,
				},
			},
			{
				Name: "Standard Ukulele",
				Notes: []model.PitchClass{
					model.NoteG, model.NoteC, model.NoteE, model.NoteA,
				},
			},
		},
		Voicings: model.VoicingTree{},
	}
}
