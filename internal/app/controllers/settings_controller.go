package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// SettingsController handles the site footer settings
type SettingsController struct {
	store *store.Store
}

// NewSettingsController creates a new settings controller
func NewSettingsController(st *store.Store) *SettingsController {
	return &SettingsController{store: st}
}

// GetFooter returns the site footer content
func (c *SettingsController) GetFooter(ctx *gin.Context) {
	settings := c.store.FooterSettings(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFooterSettingsResponse(settings)))
}

// UpdateFooter replaces the site footer content. Admin only.
func (c *SettingsController) UpdateFooter(ctx *gin.Context) {
	var req dto.FooterSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	settings := req.ToModel()
	if err := c.store.UpdateFooterSettings(ctx.Request.Context(), settings); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFooterSettingsResponse(settings)))
}
