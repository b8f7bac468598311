package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/kvstore"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
)

func seedSubmission(t *testing.T, s *Store, authorID int64) models.Submission {
	t.Helper()
	sub, err := s.AddSubmission(context.Background(), AddSubmissionInput{
		Title:   "Monsoon",
		Type:    models.SubmissionTypeWriting,
		Content: "A poem about rain.",
	}, authorID)
	require.NoError(t, err)
	return sub
}

func TestAddSubmissionDefaults(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)

	alice := registerUser(t, s, "Alice", "alice@example.com")
	sub := seedSubmission(t, s, alice.ID)

	require.Equal(t, models.SubmissionStatusPending, sub.Status)
	require.Zero(t, sub.Likes)
	require.Empty(t, sub.LikedBy)
	require.Empty(t, sub.Comments)
	require.True(t, sub.CreatedAt.Equal(testTime))
}

func TestAddSubmissionContentValidation(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()
	alice := registerUser(t, s, "Alice", "alice@example.com")

	tests := []struct {
		name    string
		input   AddSubmissionInput
		wantErr error
	}{
		{
			name:    "image with bare text content",
			input:   AddSubmissionInput{Title: "Sunset", Type: models.SubmissionTypeImage, Content: "not a url"},
			wantErr: apperrors.ErrInvalidContent,
		},
		{
			name:    "video with relative url",
			input:   AddSubmissionInput{Title: "Recital", Type: models.SubmissionTypeVideo, Content: "/videos/recital.mp4"},
			wantErr: apperrors.ErrInvalidContent,
		},
		{
			name:    "unknown type",
			input:   AddSubmissionInput{Title: "Thing", Type: models.SubmissionType("Sculpture"), Content: "x"},
			wantErr: apperrors.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddSubmission(ctx, tt.input, alice.ID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Writing keeps its text in Content, image accepts an absolute URL.
	_, err := s.AddSubmission(ctx, AddSubmissionInput{
		Title: "Sunset", Type: models.SubmissionTypeImage, Content: "https://cdn.example.com/sunset.jpg",
	}, alice.ID)
	require.NoError(t, err)
}

func TestAddSubmissionUnknownAuthor(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)

	_, err := s.AddSubmission(context.Background(), AddSubmissionInput{
		Title: "Ghost", Type: models.SubmissionTypeWriting, Content: "text",
	}, 42)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestToggleAppreciationKeepsLikesConsistent(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	bob := registerUser(t, s, "Bob", "bob@example.com")
	sub := seedSubmission(t, s, alice.ID)

	liked, err := s.ToggleAppreciation(ctx, sub.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, 1, liked.Likes)
	require.Equal(t, []int64{bob.ID}, liked.LikedBy)

	both, err := s.ToggleAppreciation(ctx, sub.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 2, both.Likes)
	require.Equal(t, both.Likes, len(both.LikedBy))

	// Toggling twice is an involution: the second call undoes the first.
	unliked, err := s.ToggleAppreciation(ctx, sub.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, 1, unliked.Likes)
	require.False(t, unliked.LikedByUser(bob.ID))
	require.True(t, unliked.LikedByUser(alice.ID))
	require.Equal(t, unliked.Likes, len(unliked.LikedBy))
}

func TestUpdateSubmissionStatusNotifiesAuthor(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	bob := registerUser(t, s, "Bob", "bob@example.com")
	sub := seedSubmission(t, s, alice.ID)

	approved, err := s.UpdateSubmissionStatus(ctx, sub.ID, models.SubmissionStatusApproved)
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusApproved, approved.Status)

	forAlice := s.NotificationsFor(ctx, alice.ID)
	require.Len(t, forAlice, 1)
	require.Contains(t, forAlice[0].Message, "Monsoon")
	require.Contains(t, forAlice[0].Message, "approved")
	require.NotNil(t, forAlice[0].UserID)
	require.Equal(t, alice.ID, *forAlice[0].UserID)

	// The decision is targeted, not broadcast.
	require.Empty(t, s.NotificationsFor(ctx, bob.ID))
}

func TestAddCommentAppendsChronologically(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	sub := seedSubmission(t, s, alice.ID)

	snapshot := models.CommentUser{ID: alice.ID, Name: alice.Name, Batch: alice.Batch}
	first, err := s.AddComment(ctx, sub.ID, "Lovely!", snapshot)
	require.NoError(t, err)
	_, err = s.AddComment(ctx, sub.ID, "Read it twice.", snapshot)
	require.NoError(t, err)

	got, err := s.SubmissionByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	require.Equal(t, "Lovely!", got.Comments[0].Text)
	require.Equal(t, "Read it twice.", got.Comments[1].Text)
	require.Equal(t, snapshot, first.User)

	_, err = s.AddComment(ctx, sub.ID, "   ", snapshot)
	require.Error(t, err)
}

func TestCommentAttributionSurvivesProfileEdits(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	sub := seedSubmission(t, s, alice.ID)

	_, err := s.AddComment(ctx, sub.ID, "Lovely!", models.CommentUser{ID: alice.ID, Name: alice.Name, Batch: alice.Batch})
	require.NoError(t, err)

	renamed := "Alicia"
	_, err = s.UpdateUserProfile(ctx, alice.ID, UpdateProfileInput{Name: &renamed})
	require.NoError(t, err)

	got, err := s.SubmissionByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Comments[0].User.Name)
}

func TestUpdateSubmissionRejectedPatchLeavesRecordUntouched(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	photo, err := s.AddSubmission(ctx, AddSubmissionInput{
		Title: "Original", Type: models.SubmissionTypeImage, Content: "https://cdn.example.com/a.jpg",
	}, alice.ID)
	require.NoError(t, err)

	title := "Changed"
	desc := "Changed description"
	content := "not a url"
	_, err = s.UpdateSubmission(ctx, photo.ID, UpdateSubmissionInput{
		Title:       &title,
		Description: &desc,
		Content:     &content,
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidContent)

	// No half-applied patch: every field keeps its prior value.
	got, err := s.SubmissionByID(ctx, photo.ID)
	require.NoError(t, err)
	require.Equal(t, "Original", got.Title)
	require.Equal(t, photo.Description, got.Description)
	require.Equal(t, "https://cdn.example.com/a.jpg", got.Content)
}

func TestCommentIDsAreDistinctWithinOneMillisecond(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	sub := seedSubmission(t, s, alice.ID)

	// The fixed clock puts both comments in the same millisecond.
	snapshot := models.CommentUser{ID: alice.ID, Name: alice.Name}
	first, err := s.AddComment(ctx, sub.ID, "one", snapshot)
	require.NoError(t, err)
	second, err := s.AddComment(ctx, sub.ID, "two", snapshot)
	require.NoError(t, err)

	require.Greater(t, second.ID, first.ID)
}

func TestSubmissionsFilter(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	bob := registerUser(t, s, "Bob", "bob@example.com")

	poem := seedSubmission(t, s, alice.ID)
	photo, err := s.AddSubmission(ctx, AddSubmissionInput{
		Title: "Sunset", Type: models.SubmissionTypeImage, Content: "https://cdn.example.com/sunset.jpg",
	}, bob.ID)
	require.NoError(t, err)

	_, err = s.UpdateSubmissionStatus(ctx, photo.ID, models.SubmissionStatusApproved)
	require.NoError(t, err)

	approved := models.SubmissionStatusApproved
	got := s.Submissions(ctx, SubmissionFilter{Status: &approved})
	require.Len(t, got, 1)
	require.Equal(t, photo.ID, got[0].ID)

	writing := models.SubmissionTypeWriting
	got = s.Submissions(ctx, SubmissionFilter{Type: &writing})
	require.Len(t, got, 1)
	require.Equal(t, poem.ID, got[0].ID)

	got = s.Submissions(ctx, SubmissionFilter{AuthorID: &bob.ID})
	require.Len(t, got, 1)
	require.Equal(t, photo.ID, got[0].ID)
}

func TestDeleteSubmissionRemovesComments(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), testTime)
	ctx := context.Background()

	alice := registerUser(t, s, "Alice", "alice@example.com")
	sub := seedSubmission(t, s, alice.ID)

	_, err := s.AddComment(ctx, sub.ID, "Lovely!", models.CommentUser{ID: alice.ID, Name: alice.Name})
	require.NoError(t, err)

	require.NoError(t, s.DeleteSubmission(ctx, sub.ID))

	_, err = s.SubmissionByID(ctx, sub.ID)
	require.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)

	require.ErrorIs(t, s.DeleteSubmission(ctx, sub.ID), apperrors.ErrSubmissionNotFound)
}
