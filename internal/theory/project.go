package theory

import "github.com/fretstudio/api/internal/model"

// Project spells out the notes reached from root by the given intervals.
//
// In chained mode each interval is a step from the previous note; the root is
// emitted first and the final step (the octave return) is dropped. In
// absolute mode each interval is an offset from the root; a leading 0 stands
// for the root itself and is not emitted twice.
//
// Output order follows interval order and is not deduplicated: a malformed
// interval set that revisits a pitch class passes through as-is.
func Project(root model.PitchClass, intervals []int, mode model.IntervalMode) ([]model.PitchClass, error) {
	rootIdx, err := Index(root)
	if err != nil {
		return nil, err
	}

	if mode == model.IntervalAbsolute {
		notes := make([]model.PitchClass, 0, len(intervals)+1)
		notes = append(notes, At(rootIdx))
		for i, offset := range intervals {
			if i == 0 && offset == 0 {
				continue
			}
			notes = append(notes, At(rootIdx+offset))
		}
		return notes, nil
	}

	// Chained: walk the steps, then drop the octave-return note.
	notes := make([]model.PitchClass, 0, len(intervals)+1)
	notes = append(notes, At(rootIdx))
	cur := rootIdx
	for _, step := range intervals {
		cur += step
		notes = append(notes, At(cur))
	}
	if len(intervals) > 0 {
		notes = notes[:len(notes)-1]
	}
	return notes, nil
}
