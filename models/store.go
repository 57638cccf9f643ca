package models

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/volttrack/mis_backend/utils"
)

// PersistFunc writes the whole collection after a mutation. The snapshot
// contract is all-or-nothing: one key, full array overwrite.
type PersistFunc func(ctx context.Context, records []*TransformerRecord) error

// RecordStore owns the canonical in-memory record collection, ordered
// most-recent-first. Create/Update/Delete mutate memory first, then call the
// persist hook; a persist failure is returned to the caller but the
// in-memory state stays updated (the next successful mutation rewrites the
// whole snapshot anyway).
//
// The dataset is small (hundreds of records); everything is held in memory
// and the mutex only serializes concurrent HTTP handlers.
type RecordStore struct {
	mu      sync.RWMutex
	records []*TransformerRecord
	persist PersistFunc
}

func NewRecordStore(persist PersistFunc) *RecordStore {
	return &RecordStore{persist: persist}
}

// All returns a copy of the ordered collection.
func (s *RecordStore) All() []*TransformerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*TransformerRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *RecordStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *RecordStore) Get(id string) (*TransformerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, utils.ErrorRecordNotFound
}

// Create validates the draft, mints a fresh id, applies defaults, computes
// the derived fields and prepends the record (most-recent-first).
func (s *RecordStore) Create(ctx context.Context, input *NewTransformerRecord) (*TransformerRecord, error) {
	if err := validateDraft(input); err != nil {
		return nil, err
	}

	rec := input.toRecord(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]*TransformerRecord{rec}, s.records...)
	return rec, s.persistLocked(ctx)
}

// Update replaces the record in place: same validation, defaulting and
// derivation rules as Create, but the id and the ordering position are
// preserved.
func (s *RecordStore) Update(ctx context.Context, id string, input *NewTransformerRecord) (*TransformerRecord, error) {
	if err := validateDraft(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.records {
		if existing.ID == id {
			rec := input.toRecord(id)
			s.records[i] = rec
			return rec, s.persistLocked(ctx)
		}
	}
	return nil, utils.ErrorRecordNotFound
}

// Delete removes the record. An unknown id is reported as
// utils.ErrorRecordNotFound and leaves the collection untouched.
func (s *RecordStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.records {
		if existing.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return utils.ErrorRecordNotFound
}

// Load replaces the collection with the migrated snapshot. It does not
// persist: loading is read-only until the next mutation.
func (s *RecordStore) Load(raw []RawRecord) {
	migrated := MigrateRecords(raw)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = migrated
}

func (s *RecordStore) persistLocked(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	snapshot := make([]*TransformerRecord, len(s.records))
	copy(snapshot, s.records)
	return s.persist(ctx, snapshot)
}
