package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// NotificationController handles the member notification feed and admin
// announcements.
type NotificationController struct {
	store *store.Store
}

// NewNotificationController creates a new notification controller
func NewNotificationController(st *store.Store) *NotificationController {
	return &NotificationController{store: st}
}

// List returns the authenticated member's notifications, newest first
func (c *NotificationController) List(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	ns := c.store.NotificationsFor(ctx.Request.Context(), user.ID)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewNotificationResponses(ns)))
}

// MarkRead marks every notification visible to the authenticated member
// as read.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.store.MarkNotificationsRead(ctx.Request.Context(), user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notifications marked as read"))
}

// Announce broadcasts an announcement to every member. Admin only.
func (c *NotificationController) Announce(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	n, err := c.store.AddGlobalNotification(ctx.Request.Context(), req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewNotificationResponses(
		[]models.Notification{n})[0]))
}
