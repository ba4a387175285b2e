package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/usecase/steps"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/middleware"
)

// StepsHandler handles step synchronization HTTP requests
type StepsHandler struct {
	syncer *steps.Syncer
	logger coreport.Logger
}

// NewStepsHandler creates a new steps handler instance
func NewStepsHandler(syncer *steps.Syncer, logger coreport.Logger) *StepsHandler {
	return &StepsHandler{
		syncer: syncer,
		logger: logger,
	}
}

// SyncSteps handles the POST /steps/sync endpoint
func (h *StepsHandler) SyncSteps(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.StepSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidSteps),
			Message: "Invalid step sync request body",
		})
		return
	}

	result, err := h.syncer.Sync(c.Request.Context(), sess, req.Steps)
	if err != nil {
		respondWithError(c, h.logger, err, "Error syncing steps", map[string]any{
			"userId": sess.UserIDOrEmpty(),
			"steps":  req.Steps,
		})
		return
	}

	c.JSON(http.StatusOK, dto.StepSyncResponse{
		Date:        result.Date,
		StepsDelta:  result.StepsDelta,
		CoinsEarned: result.CoinsEarned,
		TotalSteps:  result.TotalSteps,
		NewBalance:  result.NewBalance,
	})
}
