package models

// LeaderboardEntry is a single admin-entered placement on the monthly
// leaderboard. Ranks are free-form: neither uniqueness nor contiguity
// is enforced.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	MemberID int64  `json:"memberId"`
	Note     string `json:"note"`
}

// ArchivedLeaderboard is the snapshot of the immediately preceding
// month's leaderboard. At most one snapshot is kept; each monthly
// rollover overwrites it.
type ArchivedLeaderboard struct {
	Month   string             `json:"month"` // English month name, e.g. "July"
	Year    int                `json:"year"`
	Entries []LeaderboardEntry `json:"entries"`
}
