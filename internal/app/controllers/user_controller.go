package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// UserController handles the member directory and admin user management
type UserController struct {
	store *store.Store
}

// NewUserController creates a new user controller
func NewUserController(st *store.Store) *UserController {
	return &UserController{store: st}
}

// List returns the member directory
func (c *UserController) List(ctx *gin.Context) {
	users := c.store.Users(ctx.Request.Context())

	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = dto.NewUserResponse(u)
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out))
}

// Get returns a single member's public profile
func (c *UserController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	user, err := c.store.UserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// UpdateRole sets a member's club role. Admin only; the UI is expected
// to keep admins from demoting themselves, the store does not.
func (c *UserController) UpdateRole(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.store.UpdateUserRole(ctx.Request.Context(), id, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// ToggleSuspension flips a member's suspension flag. Admin only.
func (c *UserController) ToggleSuspension(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	user, err := c.store.ToggleUserSuspension(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}
