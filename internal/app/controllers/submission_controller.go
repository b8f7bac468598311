package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
	"github.com/dccc/clubportal/internal/pkg/apperrors"
)

// SubmissionController handles creative work submissions, appreciation,
// comments and moderation.
type SubmissionController struct {
	store *store.Store
}

// NewSubmissionController creates a new submission controller
func NewSubmissionController(st *store.Store) *SubmissionController {
	return &SubmissionController{store: st}
}

// ListApproved returns the public showcase: approved submissions, with
// an optional type filter.
func (c *SubmissionController) ListApproved(ctx *gin.Context) {
	filter := store.SubmissionFilter{}
	approved := models.SubmissionStatusApproved
	filter.Status = &approved

	if raw := ctx.Query("type"); raw != "" {
		t := models.SubmissionType(raw)
		if !t.IsValid() {
			middleware.HandleAPIError(ctx, apperrors.ErrInvalidType)
			return
		}
		filter.Type = &t
	}

	subs := c.store.Submissions(ctx.Request.Context(), filter)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionListResponse(subs)))
}

// ListAll returns every submission regardless of status, with optional
// status and type filters. Admin only.
func (c *SubmissionController) ListAll(ctx *gin.Context) {
	filter := store.SubmissionFilter{}

	if raw := ctx.Query("status"); raw != "" {
		s := models.SubmissionStatus(raw)
		if !s.IsValid() {
			middleware.HandleAPIError(ctx, apperrors.ErrInvalidStatus)
			return
		}
		filter.Status = &s
	}
	if raw := ctx.Query("type"); raw != "" {
		t := models.SubmissionType(raw)
		if !t.IsValid() {
			middleware.HandleAPIError(ctx, apperrors.ErrInvalidType)
			return
		}
		filter.Type = &t
	}

	subs := c.store.Submissions(ctx.Request.Context(), filter)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionListResponse(subs)))
}

// ListMine returns the authenticated member's own submissions at any
// status.
func (c *SubmissionController) ListMine(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	subs := c.store.Submissions(ctx.Request.Context(), store.SubmissionFilter{AuthorID: &user.ID})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionListResponse(subs)))
}

// Get returns a single approved submission
func (c *SubmissionController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	sub, err := c.store.SubmissionByID(ctx.Request.Context(), id)
	if err != nil || sub.Status != models.SubmissionStatusApproved {
		middleware.HandleAPIError(ctx, apperrors.ErrSubmissionNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionResponse(sub)))
}

// Create adds a new Pending submission for the authenticated member
func (c *SubmissionController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sub, err := c.store.AddSubmission(ctx.Request.Context(), store.AddSubmissionInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Content:     req.Content,
	}, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewSubmissionResponse(sub)))
}

// Update edits a submission at any status. Admin only.
func (c *SubmissionController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sub, err := c.store.UpdateSubmission(ctx.Request.Context(), id, store.UpdateSubmissionInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionResponse(sub)))
}

// Delete removes a submission and its comments. Admin only.
func (c *SubmissionController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.store.DeleteSubmission(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Submission deleted"))
}

// UpdateStatus records a moderation decision and notifies the author.
// Admin only.
func (c *SubmissionController) UpdateStatus(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateSubmissionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sub, err := c.store.UpdateSubmissionStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionResponse(sub)))
}

// ToggleAppreciation flips the authenticated member's appreciation on a
// submission.
func (c *SubmissionController) ToggleAppreciation(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	sub, err := c.store.ToggleAppreciation(ctx.Request.Context(), id, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSubmissionResponse(sub)))
}

// AddComment appends a comment carrying a snapshot of the commenting
// member.
func (c *SubmissionController) AddComment(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	comment, err := c.store.AddComment(ctx.Request.Context(), id, req.Text, models.CommentUser{
		ID:    user.ID,
		Name:  user.Name,
		Batch: user.Batch,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CommentResponse{
		ID:        comment.ID,
		UserID:    comment.User.ID,
		UserName:  comment.User.Name,
		UserBatch: comment.User.Batch,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}))
}

// pathID parses an integer id path parameter, writing a 400 response
// on failure.
func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id").WithField(name)))
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}
