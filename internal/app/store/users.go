package store

import (
	"context"
	"strings"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
	"github.com/dccc/clubportal/internal/pkg/validation"
)

// RegisterUserInput carries the caller-supplied fields for registration.
// Role and suspension state are assigned by the store.
type RegisterUserInput struct {
	Name     string
	Email    string
	Phone    string
	Batch    string
	Province models.Province
}

// UpdateProfileInput carries the self-editable profile fields. Email,
// id and role are deliberately absent from the patch surface.
type UpdateProfileInput struct {
	Name     *string
	Phone    *string
	Batch    *string
	Province *models.Province
}

// RegisterUser appends a new user with role GeneralStudent and the next
// id. Registration fails when the email is already in use, compared
// case-insensitively.
func (s *Store) RegisterUser(ctx context.Context, input RegisterUserInput) (user models.User, err error) {
	defer func() { observe("RegisterUser", err) }()

	if !validation.IsValidName(input.Name) {
		return models.User{}, apperrors.NewValidationError("name must be between 2 and 100 characters")
	}
	if !validation.IsValidEmail(input.Email) {
		return models.User{}, apperrors.ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserByEmail(input.Email) != nil {
		return models.User{}, apperrors.ErrEmailAlreadyExists
	}

	ids := make([]int64, len(s.users))
	for i, u := range s.users {
		ids[i] = u.ID
	}

	user = models.User{
		ID:          nextID(ids),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       input.Phone,
		Batch:       input.Batch,
		Province:    input.Province,
		Role:        models.RoleGeneralStudent,
		IsSuspended: false,
	}
	s.users = append(s.users, user)
	s.persist(ctx, keyUsers, s.users)

	s.logger.Info().Int64("userId", user.ID).Msg("User registered")
	return user, nil
}

// Login looks up a user by case-insensitive email match. A suspended
// account is blocked; an unknown email is not found.
func (s *Store) Login(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserByEmail(email)
	if user == nil {
		return models.User{}, apperrors.ErrUserNotFound
	}
	if user.IsSuspended {
		return models.User{}, apperrors.ErrAccountSuspended
	}
	return *user, nil
}

// Users returns a snapshot of all registered users
func (s *Store) Users(ctx context.Context) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID returns the user with the given id
func (s *Store) UserByID(ctx context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// UpdateUserProfile merges the self-editable fields into the matching
// user record.
func (s *Store) UpdateUserProfile(ctx context.Context, id int64, patch UpdateProfileInput) (user models.User, err error) {
	defer func() { observe("UpdateUserProfile", err) }()

	if patch.Name != nil && !validation.IsValidName(*patch.Name) {
		return models.User{}, apperrors.NewValidationError("name must be between 2 and 100 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.users[i].Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Phone != nil {
			s.users[i].Phone = *patch.Phone
		}
		if patch.Batch != nil {
			s.users[i].Batch = *patch.Batch
		}
		if patch.Province != nil {
			s.users[i].Province = *patch.Province
		}
		s.persist(ctx, keyUsers, s.users)
		return s.users[i], nil
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// UpdateUserRole sets the role of the matching user. The store performs
// the change unconditionally; protecting admins from self-demotion is
// the caller's policy.
func (s *Store) UpdateUserRole(ctx context.Context, id int64, role models.Role) (user models.User, err error) {
	defer func() { observe("UpdateUserRole", err) }()

	if !role.IsValid() {
		return models.User{}, apperrors.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			s.persist(ctx, keyUsers, s.users)
			s.logger.Info().Int64("userId", id).Str("role", string(role)).Msg("User role updated")
			return s.users[i], nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// ToggleUserSuspension flips the suspension flag of the matching user
func (s *Store) ToggleUserSuspension(ctx context.Context, id int64) (user models.User, err error) {
	defer func() { observe("ToggleUserSuspension", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsSuspended = !s.users[i].IsSuspended
			s.persist(ctx, keyUsers, s.users)
			s.logger.Info().Int64("userId", id).Bool("suspended", s.users[i].IsSuspended).Msg("User suspension toggled")
			return s.users[i], nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// findUserByEmail returns the user with the given email, compared
// case-insensitively. Caller must hold the lock.
func (s *Store) findUserByEmail(email string) *models.User {
	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range s.users {
		if strings.ToLower(s.users[i].Email) == needle {
			return &s.users[i]
		}
	}
	return nil
}
