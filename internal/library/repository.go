// Package library owns the editable music library: the ordered scale, chord
// type, and tuning registries plus the voicing tree keyed by
// (tuning, chord type, root note). All mutations persist synchronously
// through a Persister and maintain the cascade invariant: once a tuning and
// a chord type both exist, a leaf exists for every one of the 12 root notes.
package library

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fretstudio/api/internal/model"
)

// Persister durably overwrites one named collection at a time. The file
// store implements it; tests may pass nil to skip persistence.
type Persister interface {
	SaveScales([]model.Scale) error
	SaveChordTypes([]model.ChordType) error
	SaveTunings([]model.Tuning) error
	SaveVoicings(model.VoicingTree) error
}

// State is a fully-materialized library, as loaded from storage.
type State struct {
	Scales     []model.Scale
	ChordTypes []model.ChordType
	Tunings    []model.Tuning
	Voicings   model.VoicingTree
}

// voicingKey addresses one leaf of the voicing tree. Keeping the tree as a
// single flat map makes cascades key filtering instead of nested-map
// bookkeeping.
type voicingKey struct {
	Tuning    string
	ChordType string
	Root      model.PitchClass
}

// Repository holds the process-wide library state. One instance is built at
// startup and shared; the mutex serializes mutations against reads.
type Repository struct {
	mu         sync.RWMutex
	scales     []model.Scale
	chordTypes []model.ChordType
	tunings    []model.Tuning
	voicings   map[voicingKey]*model.ChordVoicings
	store      Persister
}

// NewRepository builds a repository from loaded state. Leaves missing from
// the stored tree (e.g. after hand-editing the data files) are initialized
// so the cascade invariant holds from the start.
func NewRepository(st State, store Persister) *Repository {
	r := &Repository{
		scales:     append([]model.Scale(nil), st.Scales...),
		chordTypes: append([]model.ChordType(nil), st.ChordTypes...),
		tunings:    append([]model.Tuning(nil), st.Tunings...),
		voicings:   make(map[voicingKey]*model.ChordVoicings),
		store:      store,
	}
	for tuningName, byType := range st.Voicings {
		for typeName, byRoot := range byType {
			for rootSym, leaf := range byRoot {
				root, err := model.ParsePitchClass(rootSym)
				if err != nil {
					continue
				}
				cp := leaf
				if cp.Voicings == nil {
					cp.Voicings = []model.Voicing{}
				}
				r.voicings[voicingKey{tuningName, typeName, root}] = &cp
			}
		}
	}
	r.ensureLeaves()
	return r
}

// NormalizeChordTypeName canonicalizes a chord type name the way the library
// keys it: first letter upper-cased, the rest lower-cased, so case-only
// variants collapse onto one key.
func NormalizeChordTypeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// ensureLeaves initializes an empty leaf for every
// tuning x chord type x root combination that lacks one. Callers hold the
// write lock.
func (r *Repository) ensureLeaves() {
	for _, t := range r.tunings {
		for _, ct := range r.chordTypes {
			for _, root := range model.PitchClasses {
				key := voicingKey{t.Name, ct.Name, root}
				if _, ok := r.voicings[key]; !ok {
					r.voicings[key] = &model.ChordVoicings{
						Name:     fmt.Sprintf("%s %s", root, ct.Name),
						Voicings: []model.Voicing{},
					}
				}
			}
		}
	}
}

// Accessors return copies down to the leaf slices so callers can never write
// into repository-owned state behind the lock.

func copyScale(s model.Scale) model.Scale {
	s.Intervals = append([]int(nil), s.Intervals...)
	s.AllowedChordTypes = append([]string(nil), s.AllowedChordTypes...)
	return s
}

func copyChordType(ct model.ChordType) model.ChordType {
	ct.Intervals = append([]int(nil), ct.Intervals...)
	return ct
}

func copyTuning(t model.Tuning) model.Tuning {
	t.Notes = append([]model.PitchClass(nil), t.Notes...)
	return t
}

func copyVoicingList(in []model.Voicing) []model.Voicing {
	out := make([]model.Voicing, len(in))
	for i, v := range in {
		v.Fingering = append([]model.FingerPosition(nil), v.Fingering...)
		out[i] = v
	}
	return out
}

// moveEntry swaps items[i] with its neighbor in the given direction.
// Boundary moves are no-ops.
func moveEntry[T any](items []T, i int, dir model.Direction) error {
	switch dir {
	case model.DirectionUp:
		if i > 0 {
			items[i-1], items[i] = items[i], items[i-1]
		}
	case model.DirectionDown:
		if i < len(items)-1 {
			items[i+1], items[i] = items[i], items[i+1]
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	return nil
}

// --- Scales ---

func (r *Repository) Scales() []model.Scale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Scale, len(r.scales))
	for i, s := range r.scales {
		out[i] = copyScale(s)
	}
	return out
}

func (r *Repository) Scale(name string) (model.Scale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.scales {
		if s.Name == name {
			return copyScale(s), nil
		}
	}
	return model.Scale{}, fmt.Errorf("%w: %q", ErrScaleNotFound, name)
}

// UpsertScale updates a scale in place by name, or appends it.
func (r *Repository) UpsertScale(s model.Scale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := false
	for i := range r.scales {
		if r.scales[i].Name == s.Name {
			r.scales[i] = s
			replaced = true
			break
		}
	}
	if !replaced {
		r.scales = append(r.scales, s)
	}
	return r.persistScales()
}

func (r *Repository) DeleteScale(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.scales {
		if r.scales[i].Name == name {
			r.scales = append(r.scales[:i], r.scales[i+1:]...)
			return r.persistScales()
		}
	}
	return fmt.Errorf("%w: %q", ErrScaleNotFound, name)
}

func (r *Repository) ReorderScale(name string, dir model.Direction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.scales {
		if r.scales[i].Name == name {
			if err := moveEntry(r.scales, i, dir); err != nil {
				return err
			}
			return r.persistScales()
		}
	}
	return fmt.Errorf("%w: %q", ErrScaleNotFound, name)
}

// --- Chord types ---

func (r *Repository) ChordTypes() []model.ChordType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ChordType, len(r.chordTypes))
	for i, ct := range r.chordTypes {
		out[i] = copyChordType(ct)
	}
	return out
}

func (r *Repository) ChordType(name string) (model.ChordType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ct := range r.chordTypes {
		if ct.Name == name {
			return copyChordType(ct), nil
		}
	}
	return model.ChordType{}, fmt.Errorf("%w: %q", ErrChordTypeNotFound, name)
}

// UpsertChordType stores the chord type under its normalized name and
// initializes its voicing subtree under every existing tuning.
func (r *Repository) UpsertChordType(ct model.ChordType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ct.Name = NormalizeChordTypeName(ct.Name)
	replaced := false
	for i := range r.chordTypes {
		if r.chordTypes[i].Name == ct.Name {
			r.chordTypes[i] = ct
			replaced = true
			break
		}
	}
	if !replaced {
		r.chordTypes = append(r.chordTypes, ct)
	}
	r.ensureLeaves()
	if err := r.persistChordTypes(); err != nil {
		return err
	}
	return r.persistVoicings()
}

// DeleteChordType removes the chord type and its subtree under every tuning.
func (r *Repository) DeleteChordType(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for i := range r.chordTypes {
		if r.chordTypes[i].Name == name {
			r.chordTypes = append(r.chordTypes[:i], r.chordTypes[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrChordTypeNotFound, name)
	}
	for key := range r.voicings {
		if key.ChordType == name {
			delete(r.voicings, key)
		}
	}
	if err := r.persistChordTypes(); err != nil {
		return err
	}
	return r.persistVoicings()
}

func (r *Repository) ReorderChordType(name string, dir model.Direction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.chordTypes {
		if r.chordTypes[i].Name == name {
			if err := moveEntry(r.chordTypes, i, dir); err != nil {
				return err
			}
			return r.persistChordTypes()
		}
	}
	return fmt.Errorf("%w: %q", ErrChordTypeNotFound, name)
}

// --- Tunings ---

func (r *Repository) Tunings() []model.Tuning {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Tuning, len(r.tunings))
	for i, t := range r.tunings {
		out[i] = copyTuning(t)
	}
	return out
}

func (r *Repository) Tuning(name string) (model.Tuning, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tunings {
		if t.Name == name {
			return copyTuning(t), nil
		}
	}
	return model.Tuning{}, fmt.Errorf("%w: %q", ErrTuningNotFound, name)
}

// UpsertTuning stores the tuning and initializes its voicing subtree for
// every known chord type. Re-adding an existing tuning overwrites its note
// list but leaves recorded voicings untouched.
func (r *Repository) UpsertTuning(t model.Tuning) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := false
	for i := range r.tunings {
		if r.tunings[i].Name == t.Name {
			r.tunings[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		r.tunings = append(r.tunings, t)
	}
	r.ensureLeaves()
	if err := r.persistTunings(); err != nil {
		return err
	}
	return r.persistVoicings()
}

// DeleteTuning removes the tuning and its entire voicing subtree.
func (r *Repository) DeleteTuning(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for i := range r.tunings {
		if r.tunings[i].Name == name {
			r.tunings = append(r.tunings[:i], r.tunings[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrTuningNotFound, name)
	}
	for key := range r.voicings {
		if key.Tuning == name {
			delete(r.voicings, key)
		}
	}
	if err := r.persistTunings(); err != nil {
		return err
	}
	return r.persistVoicings()
}

func (r *Repository) ReorderTuning(name string, dir model.Direction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tunings {
		if r.tunings[i].Name == name {
			if err := moveEntry(r.tunings, i, dir); err != nil {
				return err
			}
			return r.persistTunings()
		}
	}
	return fmt.Errorf("%w: %q", ErrTuningNotFound, name)
}

// --- Voicings ---

// Voicings returns the ordered voicings for a chord, or an empty list when
// the path has no entry.
func (r *Repository) Voicings(tuning, chordType string, root model.PitchClass) ([]model.Voicing, error) {
	canonical, err := model.ParsePitchClass(string(root))
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	leaf, ok := r.voicings[voicingKey{tuning, chordType, canonical}]
	if !ok {
		return []model.Voicing{}, nil
	}
	return copyVoicingList(leaf.Voicings), nil
}

// HasVoicings reports whether at least one voicing is recorded at the path.
func (r *Repository) HasVoicings(tuning, chordType string, root model.PitchClass) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	leaf, ok := r.voicings[voicingKey{tuning, chordType, root}]
	return ok && len(leaf.Voicings) > 0
}

// UpsertVoicing replaces the first voicing with a matching name, or appends.
// The path must already exist; leaves are created only by cascade rules.
func (r *Repository) UpsertVoicing(tuning, chordType string, root model.PitchClass, v model.Voicing) error {
	canonical, err := model.ParsePitchClass(string(root))
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	leaf, ok := r.voicings[voicingKey{tuning, chordType, canonical}]
	if !ok {
		return fmt.Errorf("%w: %s/%s/%s", ErrPathNotFound, tuning, chordType, canonical)
	}
	replaced := false
	for i := range leaf.Voicings {
		if leaf.Voicings[i].Name == v.Name {
			leaf.Voicings[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		leaf.Voicings = append(leaf.Voicings, v)
	}
	return r.persistVoicings()
}

// DeleteVoicing removes the named voicing from the path.
func (r *Repository) DeleteVoicing(tuning, chordType string, root model.PitchClass, name string) error {
	canonical, err := model.ParsePitchClass(string(root))
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	leaf, ok := r.voicings[voicingKey{tuning, chordType, canonical}]
	if !ok {
		return fmt.Errorf("%w: %s/%s/%s", ErrPathNotFound, tuning, chordType, canonical)
	}
	for i := range leaf.Voicings {
		if leaf.Voicings[i].Name == name {
			leaf.Voicings = append(leaf.Voicings[:i], leaf.Voicings[i+1:]...)
			return r.persistVoicings()
		}
	}
	return fmt.Errorf("%w: %q", ErrVoicingNotFound, name)
}

// ReorderVoicing swaps the named voicing with its neighbor. Moving past
// either end of the list is a no-op.
func (r *Repository) ReorderVoicing(tuning, chordType string, root model.PitchClass, name string, dir model.Direction) error {
	canonical, err := model.ParsePitchClass(string(root))
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	leaf, ok := r.voicings[voicingKey{tuning, chordType, canonical}]
	if !ok {
		return fmt.Errorf("%w: %s/%s/%s", ErrPathNotFound, tuning, chordType, canonical)
	}
	for i := range leaf.Voicings {
		if leaf.Voicings[i].Name == name {
			if err := moveEntry(leaf.Voicings, i, dir); err != nil {
				return err
			}
			return r.persistVoicings()
		}
	}
	return fmt.Errorf("%w: %q", ErrVoicingNotFound, name)
}

// --- Persistence ---

// buildTree materializes the flat voicing map back into the nested wire
// form. Callers hold at least the read lock.
func (r *Repository) buildTree() model.VoicingTree {
	tree := make(model.VoicingTree)
	for key, leaf := range r.voicings {
		byType, ok := tree[key.Tuning]
		if !ok {
			byType = make(map[string]map[string]model.ChordVoicings)
			tree[key.Tuning] = byType
		}
		byRoot, ok := byType[key.ChordType]
		if !ok {
			byRoot = make(map[string]model.ChordVoicings)
			byType[key.ChordType] = byRoot
		}
		byRoot[string(key.Root)] = model.ChordVoicings{
			Name:     leaf.Name,
			Voicings: copyVoicingList(leaf.Voicings),
		}
	}
	return tree
}

func (r *Repository) persistScales() error {
	if r.store == nil {
		return nil
	}
	return r.store.SaveScales(r.scales)
}

func (r *Repository) persistChordTypes() error {
	if r.store == nil {
		return nil
	}
	return r.store.SaveChordTypes(r.chordTypes)
}

func (r *Repository) persistTunings() error {
	if r.store == nil {
		return nil
	}
	return r.store.SaveTunings(r.tunings)
}

func (r *Repository) persistVoicings() error {
	if r.store == nil {
		return nil
	}
	return r.store.SaveVoicings(r.buildTree())
}

// Flush persists every collection. Used after seeding a fresh data
// directory and after snapshot imports.
func (r *Repository) Flush() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
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
