package repository

import (
	"context"
	"fmt"

	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 100

// SnapshotRepository is the database-backed store.Persister. Save rewrites
// whole collections; Apply writes single rows.
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load reads all four tables into a snapshot
func (r *SnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	db := r.db.WithContext(ctx)

	users, err := NewUserRepository(db).GetAll()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	teams, err := NewTeamRepository(db).GetAll()
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	projects, err := NewProjectRepository(db).GetAll()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	tasks, err := NewTaskRepository(db).GetAll()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	return models.SnapshotOf(users, teams, projects, tasks), nil
}

// Save rewrites the listed collections from snap in one transaction
func (r *SnapshotRepository) Save(ctx context.Context, snap *models.Snapshot, collections ...models.Collection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range collections {
			var err error
			switch c {
			case models.CollectionUsers:
				err = NewUserRepository(tx).ReplaceAll(snap.UserList())
			case models.CollectionTeams:
				err = NewTeamRepository(tx).ReplaceAll(snap.TeamList())
			case models.CollectionProjects:
				err = NewProjectRepository(tx).ReplaceAll(snap.ProjectList())
			case models.CollectionTasks:
				err = NewTaskRepository(tx).ReplaceAll(snap.TaskList())
			default:
				err = fmt.Errorf("unknown collection %q", c)
			}
			if err != nil {
				return fmt.Errorf("save %s: %w", c, err)
			}
		}
		return nil
	})
}

// Apply writes single-entity changes in one transaction
func (r *SnapshotRepository) Apply(ctx context.Context, changes ...store.Change) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range changes {
			if err := applyChange(tx, ch); err != nil {
				return fmt.Errorf("apply %s %s: %w", ch.Collection.Singular(), ch.ID, err)
			}
		}
		return nil
	})
}

func applyChange(tx *gorm.DB, ch store.Change) error {
	if ch.Entity == nil {
		switch ch.Collection {
		case models.CollectionUsers:
			return NewUserRepository(tx).Delete(ch.ID)
		case models.CollectionTeams:
			return NewTeamRepository(tx).Delete(ch.ID)
		case models.CollectionProjects:
			return NewProjectRepository(tx).Delete(ch.ID)
		case models.CollectionTasks:
			return NewTaskRepository(tx).Delete(ch.ID)
		}
		return fmt.Errorf("unknown collection %q", ch.Collection)
	}

	switch e := ch.Entity.(type) {
	case *models.User:
		return NewUserRepository(tx).Save(e)
	case *models.Team:
		return NewTeamRepository(tx).Save(e)
	case *models.Project:
		return NewProjectRepository(tx).Save(e)
	case *models.Task:
		return NewTaskRepository(tx).Save(e)
	}
	return fmt.Errorf("unsupported entity type %T", ch.Entity)
}

// upsertRow inserts row or updates every column of the row with the same id.
func upsertRow[T any](db *gorm.DB, row *T) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

// replaceRows upserts rows and deletes every row of model whose id is not in ids.
func replaceRows[T any](db *gorm.DB, model *T, rows []T, ids []string) error {
	del := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if len(ids) > 0 {
		del = del.Where("id NOT IN ?", ids)
	}
	if err := del.Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(&rows, batchSize).Error
}
