package store

import (
	"context"
	"sync"

	"teamtrack-backend/internal/database/models"
)

// MemoryPersister keeps the persisted snapshot in process memory. It backs
// the "memory" store driver and tests.
type MemoryPersister struct {
	mu   sync.Mutex
	snap *models.Snapshot
}

// NewMemoryPersister creates a persister whose initial contents are a copy of
// seed. A nil seed starts empty.
func NewMemoryPersister(seed *models.Snapshot) *MemoryPersister {
	return &MemoryPersister{snap: seed.Clone()}
}

// Load returns a copy of the persisted snapshot.
func (p *MemoryPersister) Load(ctx context.Context) (*models.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap.Clone(), nil
}

// Save copies the named collections of snap.
func (p *MemoryPersister) Save(ctx context.Context, snap *models.Snapshot, collections ...models.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	copied := snap.Clone()
	for _, c := range collections {
		switch c {
		case models.CollectionUsers:
			p.snap.Users = copied.Users
		case models.CollectionTeams:
			p.snap.Teams = copied.Teams
		case models.CollectionProjects:
			p.snap.Projects = copied.Projects
		case models.CollectionTasks:
			p.snap.Tasks = copied.Tasks
		}
	}
	return nil
}

// Apply writes each change to the persisted snapshot.
func (p *MemoryPersister) Apply(ctx context.Context, changes ...Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ch := range changes {
		if ch.Entity == nil {
			p.snap.Remove(ch.Collection, ch.ID)
			continue
		}
		if err := p.snap.Put(ch.Entity); err != nil {
			return err
		}
	}
	return nil
}
