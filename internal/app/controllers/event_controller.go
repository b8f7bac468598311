package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// EventController handles club event CRUD
type EventController struct {
	store *store.Store
}

// NewEventController creates a new event controller
func NewEventController(st *store.Store) *EventController {
	return &EventController{store: st}
}

// List returns all events, soonest first
func (c *EventController) List(ctx *gin.Context) {
	events := c.store.Events(ctx.Request.Context())

	out := make([]dto.EventResponse, len(events))
	for i, e := range events {
		out[i] = dto.NewEventResponse(e)
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out))
}

// Create adds a new event and broadcasts a notification. Admin only.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	event, err := c.store.AddEvent(ctx.Request.Context(), store.EventInput{
		Title:       req.Title,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewEventResponse(event)))
}

// Update replaces an event's fields. Admin only.
func (c *EventController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	event, err := c.store.UpdateEvent(ctx.Request.Context(), id, store.EventInput{
		Title:       req.Title,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponse(event)))
}

// Delete removes an event. Admin only.
func (c *EventController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.store.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted"))
}
