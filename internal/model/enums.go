package model

// Interval modes
type IntervalMode string

const (
	// IntervalChained means each entry is a semitone step from the previous
	// note. Scales use this mode; the final step closes the octave.
	IntervalChained IntervalMode = "chained"
	// IntervalAbsolute means each entry is a semitone offset from the root,
	// 0-based. Chord types use this mode.
	IntervalAbsolute IntervalMode = "absolute"
)

// Voicing difficulty
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = []Difficulty{
	DifficultyEasy, DifficultyMedium, DifficultyHard,
}

// Reorder directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Import modes
type ImportMode string

const (
	// ImportReplace discards the current library and installs the snapshot.
	ImportReplace ImportMode = "replace"
	// ImportMerge adds snapshot entries whose names are not already taken.
	ImportMerge ImportMode = "merge"
)
