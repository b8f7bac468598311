// Package controllers holds the gin handlers for the portal API.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/services"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// AuthController handles registration, login and the current member's
// profile.
type AuthController struct {
	authService services.AuthService
	store       *store.Store
}

// NewAuthController creates a new auth controller
func NewAuthController(authService services.AuthService, st *store.Store) *AuthController {
	return &AuthController{
		authService: authService,
		store:       st,
	}
}

// Register creates a new member account and signs them in
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Login authenticates a member by e-mail
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetProfile returns the authenticated member's profile
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// UpdateProfile updates the authenticated member's self-editable fields
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	updated, err := c.store.UpdateUserProfile(ctx.Request.Context(), user.ID, store.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Batch:    req.Batch,
		Province: req.Province,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(updated)))
}
