package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	engagementUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/engagement"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/dto"
)

// EngagementHandler handles engagement-related HTTP requests
type EngagementHandler struct {
	recorder *engagementUseCase.Recorder
	logger   coreport.Logger
}

// NewEngagementHandler creates a new engagement handler instance
func NewEngagementHandler(recorder *engagementUseCase.Recorder, logger coreport.Logger) *EngagementHandler {
	return &EngagementHandler{
		recorder: recorder,
		logger:   logger,
	}
}

// Engage handles the POST /posts/:postId/engagements endpoint
func (h *EngagementHandler) Engage(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		respondBadRequest(c, "Invalid post ID format")
		return
	}

	var req dto.EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid engagement request format", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	result, err := h.recorder.Engage(c.Request.Context(), userID, postID, entity.EngagementType(req.Type))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.EngagementResponse{
		ID:        result.Record.ID.String(),
		PostID:    result.Record.PostID.String(),
		UserID:    result.Record.UserID.String(),
		Type:      string(result.Record.Type),
		Credited:  result.Credited,
		CreatedAt: result.Record.CreatedAt,
	})
}
