package store

import (
	"time"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
)

// Tx stages writes inside Store.Update. It reads its own writes and is only
// valid until the update function returns.
type Tx struct {
	snap    *models.Snapshot
	now     time.Time
	newID   func() string
	undo    []undoEntry
	changes []Change
}

type undoEntry struct {
	collection models.Collection
	id         string
	previous   models.Entity
}

// Get returns a copy of the entity with id in collection c.
func (tx *Tx) Get(c models.Collection, id string) (models.Entity, bool) {
	return tx.snap.Get(c, id)
}

// Engine returns relationship views over the store as staged so far.
func (tx *Tx) Engine() *authz.Engine {
	return authz.NewEngine(tx.snap)
}

// Upsert stages an insert or replace of e with the same id and timestamp
// rules as Store.Upsert.
func (tx *Tx) Upsert(e models.Entity) (models.Entity, error) {
	if e == nil {
		return nil, apperrors.NewValidationError("entity", "is required")
	}
	c := e.Collection()
	if !c.IsValid() {
		return nil, apperrors.ErrUnknownCollection
	}

	base := e.Base()
	previous, existed := models.Entity(nil), false
	if base.ID == "" {
		base.ID = tx.newID()
		base.CreatedAt = tx.now
	} else if previous, existed = tx.snap.Get(c, base.ID); existed {
		base.CreatedAt = previous.Base().CreatedAt
	} else if base.CreatedAt.IsZero() {
		base.CreatedAt = tx.now
	}
	base.UpdatedAt = tx.now

	if err := tx.snap.Put(e); err != nil {
		return nil, err
	}
	tx.undo = append(tx.undo, undoEntry{collection: c, id: base.ID, previous: previous})

	stored, _ := tx.snap.Get(c, base.ID)
	tx.changes = append(tx.changes, Change{Collection: c, ID: base.ID, Entity: stored})

	out, _ := tx.snap.Get(c, base.ID)
	return out, nil
}

// Delete stages removal of the entity with id. An absent id stages nothing.
func (tx *Tx) Delete(c models.Collection, id string) error {
	if !c.IsValid() {
		return apperrors.ErrUnknownCollection
	}
	previous, ok := tx.snap.Get(c, id)
	if !ok {
		return nil
	}
	tx.snap.Remove(c, id)
	tx.undo = append(tx.undo, undoEntry{collection: c, id: id, previous: previous})
	tx.changes = append(tx.changes, Change{Collection: c, ID: id})
	return nil
}

func (tx *Tx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		u := tx.undo[i]
		if u.previous != nil {
			_ = tx.snap.Put(u.previous)
		} else {
			tx.snap.Remove(u.collection, u.id)
		}
	}
	tx.undo = nil
	tx.changes = nil
}
