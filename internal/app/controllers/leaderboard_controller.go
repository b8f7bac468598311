package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/middleware"
)

// LeaderboardController handles the monthly leaderboard and its archive
type LeaderboardController struct {
	store *store.Store
}

// NewLeaderboardController creates a new leaderboard controller
func NewLeaderboardController(st *store.Store) *LeaderboardController {
	return &LeaderboardController{store: st}
}

// Get returns the current leaderboard together with the previous
// month's archived snapshot, if one exists.
func (c *LeaderboardController) Get(ctx *gin.Context) {
	current := c.store.Leaderboard(ctx.Request.Context())
	previous := c.store.ArchivedLeaderboard(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LeaderboardResponse{
		Current:  dto.NewLeaderboardEntryResponses(current),
		Previous: dto.NewArchivedLeaderboardResponse(previous),
	}))
}

// Set replaces the current leaderboard wholesale. Admin only.
func (c *LeaderboardController) Set(ctx *gin.Context) {
	var req dto.SetLeaderboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	entries := make([]models.LeaderboardEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = models.LeaderboardEntry{
			Rank:     e.Rank,
			MemberID: e.MemberID,
			Note:     e.Note,
		}
	}

	if err := c.store.SetLeaderboard(ctx.Request.Context(), entries); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLeaderboardEntryResponses(entries)))
}
