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

// UserService handles business logic for users
type UserService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(store *store.Store, validator *validator.Validate) *UserService {
	return &UserService{
		store:     store,
		validator: validator,
	}
}

// UpdateProfileRequest represents the request to edit the current user's profile
type UpdateProfileRequest struct {
	Name string      `json:"name" validate:"required,max=100"`
	Role models.Role `json:"role" validate:"required,role"`
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.store.User(id)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// List returns every user
func (s *UserService) List(ctx context.Context) []models.User {
	return s.store.ListAll(ctx).UserList()
}

// Assignable returns the users a task may be assigned to
func (s *UserService) Assignable(ctx context.Context) []models.User {
	return authz.NewEngine(s.store.ListAll(ctx)).AssignableUsers()
}

// ResolveOrCreate returns the user whose name matches name case-insensitively,
// creating a member with that name when there is none.
func (s *UserService) ResolveOrCreate(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	var user *models.User
	var created bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		var err error
		user, created, err = s.resolveIn(tx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	if created {
		logger.WithContext(ctx).WithField("user_id", user.ID).Info("created user from name")
	}
	return user, nil
}

// resolveIn finds the user named name in tx or stages a new member.
func (s *UserService) resolveIn(tx *store.Tx, name string) (*models.User, bool, error) {
	if user, ok := tx.Engine().FindUserByName(name); ok {
		return user, false, nil
	}
	stored, err := tx.Upsert(&models.User{Name: name, Role: models.RoleMember})
	if err != nil {
		return nil, false, err
	}
	return stored.(*models.User), true, nil
}

// UpdateProfile changes the session user's own name and role
func (s *UserService) UpdateProfile(ctx context.Context, session authz.Session, req *UpdateProfileRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if role, err := models.ParseRole(string(req.Role)); err == nil {
		req.Role = role
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		existing, ok := tx.Get(models.CollectionUsers, session.UserID)
		if !ok {
			return apperrors.ErrUserNotFound
		}
		current := existing.(*models.User)
		engine := tx.Engine()
		if err := authorize(ctx, engine, session, authz.ActionEdit, models.CollectionUsers, current); err != nil {
			return err
		}
		if other, ok := engine.FindUserByName(req.Name); ok && other.ID != current.ID {
			return apperrors.ErrUserExists
		}

		current.Name = req.Name
		current.Role = req.Role
		stored, err := tx.Upsert(current)
		if err != nil {
			return err
		}
		updated = stored.(*models.User)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
