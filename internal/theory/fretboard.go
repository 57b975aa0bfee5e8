package theory

import "github.com/fretstudio/api/internal/model"

// Classifier annotates the sounding pitch class at (fret, string). The
// string index is 0-based in tuning order (lowest string first).
type Classifier func(pc model.PitchClass, fret, stringIdx int) model.FretboardNote

// RenderFretboard walks every string of the tuning across frets 0..numFrets
// inclusive and classifies each cell. The renderer has no scale or chord
// knowledge of its own; membership logic is injected via classify.
//
// String numbers follow guitar-tab convention: string 1 is the
// highest-pitched (last) tuning entry, counting up toward the lowest.
func RenderFretboard(tuning model.Tuning, numFrets int, classify Classifier) (model.Fretboard, error) {
	board := make(model.Fretboard, len(tuning.Notes))
	for i, open := range tuning.Notes {
		openIdx, err := Index(open)
		if err != nil {
			return nil, err
		}
		row := make([]model.FretboardNote, 0, numFrets+1)
		for fret := 0; fret <= numFrets; fret++ {
			row = append(row, classify(At(openIdx+fret), fret, i))
		}
		board[len(tuning.Notes)-i] = row
	}
	return board, nil
}
