package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// ActivityController handles club activity showcase CRUD
type ActivityController struct {
	store *store.Store
}

// NewActivityController creates a new activity controller
func NewActivityController(st *store.Store) *ActivityController {
	return &ActivityController{store: st}
}

// List returns all activities
func (c *ActivityController) List(ctx *gin.Context) {
	activities := c.store.Activities(ctx.Request.Context())

	out := make([]dto.ActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = dto.NewActivityResponse(a)
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out))
}

// Create adds a new activity. Admin only.
func (c *ActivityController) Create(ctx *gin.Context) {
	var req dto.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	activity, err := c.store.AddActivity(ctx.Request.Context(), store.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewActivityResponse(activity)))
}

// Update replaces an activity's fields. Admin only.
func (c *ActivityController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	activity, err := c.store.UpdateActivity(ctx.Request.Context(), id, store.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewActivityResponse(activity)))
}

// Delete removes an activity. Admin only.
func (c *ActivityController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.store.DeleteActivity(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Activity deleted"))
}
