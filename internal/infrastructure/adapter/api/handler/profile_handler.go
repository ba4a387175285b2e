package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stepexplorer/server/internal/domain/entity"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/usecase/profile"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/middleware"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileUseCase *profile.UseCase
	logger         coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(profileUseCase *profile.UseCase, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetProfile handles the GET /profile endpoint. The profile is bootstrapped
// with the starting balance on first access.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	userProfile, err := h.profileUseCase.EnsureProfile(c.Request.Context(), sess)
	if err != nil {
		respondWithError(c, h.logger, err, "Error loading profile", map[string]any{
			"userId": sess.UserIDOrEmpty(),
		})
		return
	}

	c.JSON(http.StatusOK, profileToResponse(userProfile))
}

// GetBalance handles the GET /profile/balance endpoint
func (h *ProfileHandler) GetBalance(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	balance, err := h.profileUseCase.GetBalance(c.Request.Context(), sess)
	if err != nil {
		respondWithError(c, h.logger, err, "Error getting balance", map[string]any{
			"userId": sess.UserIDOrEmpty(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID: balance.UserID,
		Coins:  balance.Coins,
	})
}

func profileToResponse(userProfile *entity.UserProfile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:          userProfile.ID,
		Username:    userProfile.Username,
		DisplayName: userProfile.DisplayName,
		Coins:       userProfile.Coins(),
		Steps:       userProfile.Steps,
	}
	if userProfile.AvatarURL != nil {
		resp.AvatarURL = *userProfile.AvatarURL
	}
	return resp
}
