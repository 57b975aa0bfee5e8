package library

import "github.com/fretstudio/api/internal/model"

// Import applies a snapshot under the given policy. The snapshot must be
// validated (ValidateSnapshot) before this is called; Import itself does not
// partially apply — the in-memory swap happens only after the incoming data
// is fully materialized.
func (r *Repository) Import(snap *model.Snapshot, mode model.ImportMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch mode {
	case model.ImportReplace:
		r.replaceAll(snap)
	case model.ImportMerge:
		r.mergeAll(snap)
	default:
		return ErrInvalidSnapshot
	}

	r.ensureLeaves()
	if err := r.persistScales(); err != nil {
		return err
	}
	if err := r.persistChordTypes(); err != nil {
		return err
	}
	if err := r.persistTunings(); err != nil {
		return err
	}
	return r.persistVoicings()
}

// replaceAll installs the snapshot wholesale.
func (r *Repository) replaceAll(snap *model.Snapshot) {
	r.scales = append([]model.Scale(nil), snap.Scales...)
	r.chordTypes = make([]model.ChordType, 0, len(snap.ChordTypes))
	for _, ct := range snap.ChordTypes {
		ct.Name = NormalizeChordTypeName(ct.Name)
		r.chordTypes = append(r.chordTypes, ct)
	}
	r.tunings = append([]model.Tuning(nil), snap.Tunings...)
	r.voicings = make(map[voicingKey]*model.ChordVoicings)
	r.mergeTree(snap.Voicings)
}

// mergeAll adds what the current library does not already have. Existing
// entries always win on a name collision.
func (r *Repository) mergeAll(snap *model.Snapshot) {
	for _, s := range snap.Scales {
		if _, err := r.scaleLocked(s.Name); err != nil {
			r.scales = append(r.scales, s)
		}
	}
	for _, ct := range snap.ChordTypes {
		ct.Name = NormalizeChordTypeName(ct.Name)
		if _, err := r.chordTypeLocked(ct.Name); err != nil {
			r.chordTypes = append(r.chordTypes, ct)
		}
	}
	for _, t := range snap.Tunings {
		if _, err := r.tuningLocked(t.Name); err != nil {
			r.tunings = append(r.tunings, t)
		}
	}
	r.mergeTree(snap.Voicings)
}

// mergeTree walks the incoming voicing tree, creating missing leaves and
// adding voicings whose names are not already present at the leaf.
func (r *Repository) mergeTree(tree model.VoicingTree) {
	for tuningName, byType := range tree {
		for typeName, byRoot := range byType {
			typeName = NormalizeChordTypeName(typeName)
			for rootSym, incoming := range byRoot {
				root, err := model.ParsePitchClass(rootSym)
				if err != nil {
					continue
				}
				key := voicingKey{tuningName, typeName, root}
				leaf, ok := r.voicings[key]
				if !ok {
					leaf = &model.ChordVoicings{Name: incoming.Name, Voicings: []model.Voicing{}}
					r.voicings[key] = leaf
				}
				for _, v := range incoming.Voicings {
					exists := false
					for _, cur := range leaf.Voicings {
						if cur.Name == v.Name {
							exists = true
							break
						}
					}
					if !exists {
						leaf.Voicings = append(leaf.Voicings, v)
					}
				}
			}
		}
	}
}

func (r *Repository) scaleLocked(name string) (model.Scale, error) {
	for _, s := range r.scales {
		if s.Name == name {
			return s, nil
		}
	}
	return model.Scale{}, ErrScaleNotFound
}

func (r *Repository) chordTypeLocked(name string) (model.ChordType, error) {
	for _, ct := range r.chordTypes {
		if ct.Name == name {
			return ct, nil
		}
	}
	return model.ChordType{}, ErrChordTypeNotFound
}

func (r *Repository) tuningLocked(name string) (model.Tuning, error) {
	for _, t := range r.tunings {
		if t.Name == name {
			return t, nil
		}
	}
	return model.Tuning{}, ErrTuningNotFound
}
