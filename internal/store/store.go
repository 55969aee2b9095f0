// Package store keeps the four entity collections in memory and writes every
// mutation through a Persister before reporting success.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/logger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mocks.go -package=mocks

// Change is one entity write. A nil Entity deletes the row with ID.
type Change struct {
	Collection models.Collection
	ID         string
	Entity     models.Entity
}

// Persister is the durable backing of a Store. Save rewrites whole
// collections from snap; Apply writes individual changes in one unit. Neither
// may retain its arguments.
type Persister interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot, collections ...models.Collection) error
	Apply(ctx context.Context, changes ...Change) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID generator used for new entities.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store is the entity store. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	snap      *models.Snapshot
	persister Persister
	now       func() time.Time
	newID     func() string
}

// New creates a store and loads its initial contents from persister.
func New(ctx context.Context, persister Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: persister,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entities: %w", err)
	}
	if snap == nil {
		snap = models.NewSnapshot()
	}
	s.snap = snap.Clone()
	return s, nil
}

// ListAll returns a deep copy of every collection.
func (s *Store) ListAll(ctx context.Context) *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// IsEmpty reports whether the store holds no entities at all.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.IsEmpty()
}

// Upsert inserts or replaces e. An empty id gets a fresh one and a creation
// time; an existing id keeps its stored creation time. updated_at is always
// refreshed. The returned entity is a copy of what was stored.
func (s *Store) Upsert(ctx context.Context, e models.Entity) (models.Entity, error) {
	var stored models.Entity
	err := s.Update(ctx, func(tx *Tx) error {
		var err error
		stored, err = tx.Upsert(e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Delete removes the entity with id from collection c. Deleting an id that is
// not stored is a no-op and writes nothing.
func (s *Store) Delete(ctx context.Context, c models.Collection, id string) error {
	return s.Update(ctx, func(tx *Tx) error {
		return tx.Delete(c, id)
	})
}

// Update runs fn with exclusive access to the store. Writes staged through tx
// are persisted with a single Persister.Apply when fn returns nil. If fn or
// the persister fails, every staged write is undone and nothing is stored.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{snap: s.snap, now: s.now(), newID: s.newID}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	if len(tx.changes) == 0 {
		return nil
	}

	if err := s.persister.Apply(ctx, tx.changes...); err != nil {
		last, count := tx.changes[len(tx.changes)-1], len(tx.changes)
		tx.rollback()
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"collection": string(last.Collection),
			"id":         last.ID,
			"changes":    count,
		}).WithError(err).Error("failed to persist changes")
		verb := "save"
		if last.Entity == nil {
			verb = "delete"
		}
		return fmt.Errorf("failed to %s %s: %w", verb, last.Collection.Singular(), err)
	}
	return nil
}

// Replace swaps every collection for the contents of snap.
func (s *Store) Replace(ctx context.Context, snap *models.Snapshot) error {
	next := snap.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Save(ctx, next, models.Collections...); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to persist snapshot")
		return fmt.Errorf("failed to replace entities: %w", err)
	}
	s.snap = next
	return nil
}

// User returns a copy of the user with id.
func (s *Store) User(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.snap.Users[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

// Team returns a copy of the team with id.
func (s *Store) Team(id string) (*models.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.snap.Get(models.CollectionTeams, id)
	if !ok {
		return nil, false
	}
	return e.(*models.Team), true
}

// Project returns a copy of the project with id.
func (s *Store) Project(id string) (*models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.snap.Projects[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Task returns a copy of the task with id.
func (s *Store) Task(id string) (*models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.snap.Get(models.CollectionTasks, id)
	if !ok {
		return nil, false
	}
	return e.(*models.Task), true
}
