package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/usecase/leaderboard"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	aggregator *leaderboard.Aggregator
	logger     coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(aggregator *leaderboard.Aggregator, logger coreport.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		aggregator: aggregator,
		logger:     logger,
	}
}

// GetLeaderboard handles the GET /leaderboard endpoint
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := leaderboard.MaxEntries
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.aggregator.TopN(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, h.logger, err, "Error building leaderboard", map[string]any{
			"limit": limit,
		})
		return
	}

	responses := make([]dto.LeaderboardEntryResponse, 0, len(entries))
	for i, entry := range entries {
		responses = append(responses, dto.LeaderboardEntryResponse{
			Rank:          i + 1,
			DisplayName:   entry.DisplayName,
			AvatarURL:     entry.AvatarURL,
			Coins:         entry.Coins,
			BuildingCount: entry.BuildingCount,
		})
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{Entries: responses})
}
