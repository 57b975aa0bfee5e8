package model

import "time"

// VoicingTree is the serialized voicing library:
// tuning name -> chord type name -> root note symbol -> voicings leaf.
type VoicingTree map[string]map[string]map[string]ChordVoicings

// Snapshot is a full, self-contained library export. ID and ExportedAt are
// stamped on export and ignored on import.
type Snapshot struct {
	ID         string      `json:"id,omitempty"`
	ExportedAt *time.Time  `json:"exported_at,omitempty"`
	Scales     []Scale     `json:"scales" validate:"dive"`
	ChordTypes []ChordType `json:"chord_types" validate:"dive"`
	Tunings    []Tuning    `json:"tunings" validate:"dive"`
	Voicings   VoicingTree `json:"voicings"`
}