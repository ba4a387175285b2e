package dto

// LeaderboardEntryResponse represents one ranked user on the leaderboard
type LeaderboardEntryResponse struct {
	Rank          int    `json:"rank"`
	DisplayName   string `json:"displayName"`
	AvatarURL     string `json:"avatarUrl"`
	Coins         int64  `json:"coins"`
	BuildingCount int64  `json:"buildingCount"`
}

// LeaderboardResponse represents the ranked leaderboard payload
type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}
