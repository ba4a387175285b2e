package dto

// StepSyncRequest represents the daily running step total reported by a device
type StepSyncRequest struct {
	Steps int64 `json:"steps" binding:"min=0"`
}

// StepSyncResponse represents the API response after crediting a step report
type StepSyncResponse struct {
	Date        string `json:"date"`
	StepsDelta  int64  `json:"stepsDelta"`
	CoinsEarned int64  `json:"coinsEarned"`
	TotalSteps  int64  `json:"totalSteps"`
	NewBalance  int64  `json:"newBalance"`
}
