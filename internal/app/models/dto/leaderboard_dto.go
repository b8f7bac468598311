package dto

import "github.com/dccc/clubportal/internal/app/models"

// LeaderboardEntryRequest represents one admin-entered placement
type LeaderboardEntryRequest struct {
	Rank     int    `json:"rank" binding:"required"`
	MemberID int64  `json:"memberId" binding:"required,min=1"`
	Note     string `json:"note"`
}

// SetLeaderboardRequest replaces the current leaderboard wholesale
type SetLeaderboardRequest struct {
	Entries []LeaderboardEntryRequest `json:"entries" binding:"required,dive"`
}

// LeaderboardEntryResponse represents one placement returned by the API
type LeaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	MemberID int64  `json:"memberId"`
	Note     string `json:"note"`
}

// ArchivedLeaderboardResponse represents the previous month's snapshot
type ArchivedLeaderboardResponse struct {
	Month   string                     `json:"month"`
	Year    int                        `json:"year"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// LeaderboardResponse bundles the current leaderboard with the archived
// previous period, if any.
type LeaderboardResponse struct {
	Current  []LeaderboardEntryResponse   `json:"current"`
	Previous *ArchivedLeaderboardResponse `json:"previous,omitempty"`
}

// NewLeaderboardEntryResponses maps the current leaderboard entries
func NewLeaderboardEntryResponses(entries []models.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryResponse{Rank: e.Rank, MemberID: e.MemberID, Note: e.Note}
	}
	return out
}

// NewArchivedLeaderboardResponse maps the archived snapshot, if present
func NewArchivedLeaderboardResponse(a *models.ArchivedLeaderboard) *ArchivedLeaderboardResponse {
	if a == nil {
		return nil
	}
	return &ArchivedLeaderboardResponse{
		Month:   a.Month,
		Year:    a.Year,
		Entries: NewLeaderboardEntryResponses(a.Entries),
	}
}
