package service

import (
	"context"
	"strings"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// TeamService handles business logic for teams
type TeamService struct {
	store     *store.Store
	users     *UserService
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store *store.Store, users *UserService, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		users:     users,
		validator: validator,
	}
}

// SaveTeamRequest represents the request to create or edit a team. An empty
// ID creates a team. Members may be given by id, by name, or both; unknown
// names are created as members.
type SaveTeamRequest struct {
	ID          string   `json:"-"`
	Name        string   `json:"name" validate:"required,max=100" example:"Development Team"`
	MemberIDs   []string `json:"member_ids,omitempty"`
	MemberNames []string `json:"member_names,omitempty" example:"Sarah Miller,Mike Chen"`
}

// List returns every team
func (s *TeamService) List(ctx context.Context) []models.Team {
	return s.store.ListAll(ctx).TeamList()
}

// Save creates or edits a team. Users created for unknown member names are
// stored together with the team or not at all.
func (s *TeamService) Save(ctx context.Context, session authz.Session, req *SaveTeamRequest) (*models.Team, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var saved *models.Team
	var created []string
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		team := &models.Team{}
		action := authz.ActionCreate
		if req.ID != "" {
			existing, ok := tx.Get(models.CollectionTeams, req.ID)
			if !ok {
				return apperrors.ErrTeamNotFound
			}
			team = existing.(*models.Team)
			action = authz.ActionEdit
		}
		if err := authorize(ctx, tx.Engine(), session, action, models.CollectionTeams, team); err != nil {
			return err
		}

		members := append([]string(nil), req.MemberIDs...)
		for _, name := range req.MemberNames {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			user, isNew, err := s.users.resolveIn(tx, name)
			if err != nil {
				return err
			}
			if isNew {
				created = append(created, user.ID)
			}
			members = append(members, user.ID)
		}

		team.Name = req.Name
		team.Members = dedupe(members)

		stored, err := tx.Upsert(team)
		if err != nil {
			return err
		}
		saved = stored.(*models.Team)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, id := range created {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"user_id": id,
			"team_id": saved.ID,
		}).Info("created user from name")
	}
	return saved, nil
}

// Delete removes a team. Projects owned by it are left in place.
func (s *TeamService) Delete(ctx context.Context, session authz.Session, id string) error {
	engine := authz.NewEngine(s.store.ListAll(ctx))
	if err := authorize(ctx, engine, session, authz.ActionDelete, models.CollectionTeams, nil); err != nil {
		return err
	}
	return s.store.Delete(ctx, models.CollectionTeams, id)
}

// Members returns the users of a team, skipping member ids with no user
func (s *TeamService) Members(ctx context.Context, id string) ([]models.User, error) {
	snap := s.store.ListAll(ctx)
	if _, ok := snap.Teams[id]; !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return authz.NewEngine(snap).MembersOf(id), nil
}
