package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/kvstore"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
)

var testTime = time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

func TestRegisterUserAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)

	alice := registerUser(t, s, "Alice", "alice@example.com")
	bob := registerUser(t, s, "Bob", "bob@example.com")

	require.Equal(t, int64(1), alice.ID)
	require.Equal(t, int64(2), bob.ID)
	require.Equal(t, models.RoleGeneralStudent, alice.Role)
	require.False(t, alice.IsSuspended)
}

func TestRegisterUserValidation(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterUserInput
	}{
		{name: "blank name", input: RegisterUserInput{Name: " ", Email: "x@example.com"}},
		{name: "single character name", input: RegisterUserInput{Name: "A", Email: "x@example.com"}},
		{name: "invalid email", input: RegisterUserInput{Name: "Alice", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.RegisterUser(ctx, tt.input)
			require.Error(t, err)
		})
	}
}

func TestRegisterUserRejectsDuplicateEmailCaseInsensitively(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	registerUser(t, s, "Alice", "Alice@Example.com")

	_, err := s.RegisterUser(ctx, RegisterUserInput{Name: "Imposter", Email: "alice@example.COM"})
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginMatchesEmailCaseInsensitively(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "Alice@Example.com")

	got, err := s.Login(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)

	_, err = s.Login(ctx, "nobody@example.com")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginBlocksSuspendedAccount(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")

	suspended, err := s.ToggleUserSuspension(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, suspended.IsSuspended)

	_, err = s.Login(ctx, "alice@example.com")
	require.ErrorIs(t, err, apperrors.ErrAccountSuspended)

	// Toggling again restores access.
	restored, err := s.ToggleUserSuspension(ctx, alice.ID)
	require.NoError(t, err)
	require.False(t, restored.IsSuspended)

	_, err = s.Login(ctx, "alice@example.com")
	require.NoError(t, err)
}

func TestUpdateUserProfileMergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")

	phone := "+880 1711-000000"
	updated, err := s.UpdateUserProfile(ctx, alice.ID, UpdateProfileInput{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, updated.Phone)
	require.Equal(t, alice.Name, updated.Name)
	require.Equal(t, alice.Email, updated.Email)
}

func TestUpdateUserRole(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")

	updated, err := s.UpdateUserRole(ctx, alice.ID, models.RoleExecutiveMember)
	require.NoError(t, err)
	require.Equal(t, models.RoleExecutiveMember, updated.Role)

	_, err = s.UpdateUserRole(ctx, alice.ID, models.Role("Supreme Leader"))
	require.ErrorIs(t, err, apperrors.ErrInvalidRole)

	_, err = s.UpdateUserRole(ctx, 999, models.RoleAdmin)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
