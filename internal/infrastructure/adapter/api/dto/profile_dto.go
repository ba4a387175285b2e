package dto

// ProfileResponse represents the API response for a user profile
type ProfileResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Coins       int64  `json:"coins"`
	Steps       int64  `json:"steps"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// BalanceResponse represents the API response for a user's coin balance
type BalanceResponse struct {
	UserID string `json:"userId"`
	Coins  int64  `json:"coins"`
}
