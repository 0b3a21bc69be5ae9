// Package memory provides the in-process entity store backing every repository.
//
// Store is a generic keyed map guarded by a single mutex. Optional unique
// secondary indexes (container id, department name, rule name) are maintained
// inside the same critical section as the primary map, so an insert either
// lands in every index or in none. Entities are cloned on the way in and on
// the way out; callers never share memory with the store.
//
// A Store lives for the whole process. Nothing is persisted.
package memory

import (
	"sort"
	"sync"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"
)

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithClone sets the function copying entities across the store boundary.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(s *Store[T]) {
		s.clone = clone
	}
}

// WithValidator sets the function checking entities before Add and Update.
func WithValidator[T any](validate func(T) error) Option[T] {
	return func(s *Store[T]) {
		s.validate = validate
	}
}

// WithUniqueIndex adds a unique secondary index. keyOf must be deterministic
// for a given entity state.
func WithUniqueIndex[T any](name string, keyOf func(T) string) Option[T] {
	return func(s *Store[T]) {
		s.indexes[name] = &uniqueIndex[T]{keyOf: keyOf, keys: make(map[string]kernel.UUID)}
	}
}

type entry[T any] struct {
	value T
	seq   uint64
}

type uniqueIndex[T any] struct {
	keyOf func(T) string
	keys  map[string]kernel.UUID
}

// Store is a thread-safe keyed collection of T.
type Store[T any] struct {
	mu       sync.Mutex
	kind     string
	idOf     func(T) kernel.UUID
	clone    func(T) T
	validate func(T) error
	items    map[kernel.UUID]entry[T]
	indexes  map[string]*uniqueIndex[T]
	seq      uint64
}

// NewStore creates an empty store. kind names the entity in errors ("parcel").
func NewStore[T any](kind string, idOf func(T) kernel.UUID, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		kind:    kind,
		idOf:    idOf,
		clone:   func(v T) T { return v },
		items:   make(map[kernel.UUID]entry[T]),
		indexes: make(map[string]*uniqueIndex[T]),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the entity with id.
func (s *Store[T]) Get(id kernel.UUID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(e.value), true
}

// GetAll returns copies of every entity in insertion order.
func (s *Store[T]) GetAll() []T {
	return s.Find(nil)
}

// Find returns copies of the entities matching keep, in insertion order.
// A nil keep matches everything. keep runs under the store lock and must
// neither mutate nor retain its argument.
func (s *Store[T]) Find(keep func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]entry[T], 0, len(s.items))
	for _, e := range s.items {
		if keep == nil || keep(e.value) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = s.clone(e.value)
	}
	return out
}

// GetBy looks an entity up through the named unique index.
func (s *Store[T]) GetBy(index, key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	idx, ok := s.indexes[index]
	if !ok {
		return zero, false
	}
	id, ok := idx.keys[key]
	if !ok {
		return zero, false
	}
	return s.clone(s.items[id].value), true
}

// Exists reports whether an entity with id is stored.
func (s *Store[T]) Exists(id kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.items[id]
	return ok
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Add inserts entity and returns the stored copy.
//
// Returns:
//   - errs.ObjectAlreadyExistsError when the id or a unique key is taken
//   - the validator's error when entity is invalid
func (s *Store[T]) Add(entity T) (T, error) {
	var zero T
	if err := s.check(entity); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(entity)
	if _, ok := s.items[id]; ok {
		return zero, errs.NewObjectAlreadyExistsError(s.kind, id.String())
	}
	if err := s.checkIndexes(id, entity); err != nil {
		return zero, err
	}

	stored := s.clone(entity)
	s.seq++
	s.items[id] = entry[T]{value: stored, seq: s.seq}
	s.index(id, stored)
	return s.clone(stored), nil
}

// Update replaces the entity with the same id, keeping its insertion position.
//
// Returns:
//   - errs.ObjectNotFoundError when the id is unknown
//   - errs.ObjectAlreadyExistsError when a unique key belongs to another entity
func (s *Store[T]) Update(entity T) (T, error) {
	var zero T
	if err := s.check(entity); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(entity)
	current, ok := s.items[id]
	if !ok {
		return zero, errs.NewObjectNotFoundError(s.kind, id.String())
	}
	if err := s.checkIndexes(id, entity); err != nil {
		return zero, err
	}

	stored := s.clone(entity)
	s.unindex(current.value)
	s.items[id] = entry[T]{value: stored, seq: current.seq}
	s.index(id, stored)
	return s.clone(stored), nil
}

// Modify loads the entity with id, passes a private copy to mutate and stores
// the result, all under the store lock. Writes made concurrently through any
// other method are ordered entirely before or after it. mutate must not call
// back into this store. The store is unchanged when mutate fails.
//
// Returns:
//   - errs.ObjectNotFoundError when the id is unknown
//   - the error returned by mutate or the validator
//   - errs.ObjectAlreadyExistsError when a unique key belongs to another entity
func (s *Store[T]) Modify(id kernel.UUID, mutate func(T) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return zero, errs.NewObjectNotFoundError(s.kind, id.String())
	}

	next, err := mutate(s.clone(current.value))
	if err != nil {
		return zero, err
	}
	if err = s.check(next); err != nil {
		return zero, err
	}
	if s.idOf(next) != id {
		return zero, errs.NewValueIsInvalidError(s.kind + " id")
	}
	if err = s.checkIndexes(id, next); err != nil {
		return zero, err
	}

	stored := s.clone(next)
	s.unindex(current.value)
	s.items[id] = entry[T]{value: stored, seq: current.seq}
	s.index(id, stored)
	return s.clone(stored), nil
}

// Delete removes the entity with id and its index entries.
func (s *Store[T]) Delete(id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return errs.NewObjectNotFoundError(s.kind, id.String())
	}

	s.unindex(current.value)
	delete(s.items, id)
	return nil
}

func (s *Store[T]) check(entity T) error {
	if s.validate == nil {
		return nil
	}
	return s.validate(entity)
}

// checkIndexes fails when a unique key of entity is owned by another id.
func (s *Store[T]) checkIndexes(id kernel.UUID, entity T) error {
	for name, idx := range s.indexes {
		key := idx.keyOf(entity)
		if owner, taken := idx.keys[key]; taken && owner != id {
			return errs.NewObjectAlreadyExistsError(s.kind+" "+name, key)
		}
	}
	return nil
}

func (s *Store[T]) index(id kernel.UUID, entity T) {
	for _, idx := range s.indexes {
		idx.keys[idx.keyOf(entity)] = id
	}
}

func (s *Store[T]) unindex(entity T) {
	for _, idx := range s.indexes {
		delete(idx.keys, idx.keyOf(entity))
	}
}
