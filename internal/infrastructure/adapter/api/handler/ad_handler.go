package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	impressionUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/impression"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/dto"
)

// AdHandler handles ad delivery HTTP requests
type AdHandler struct {
	capper *impressionUseCase.Capper
	logger coreport.Logger
}

// NewAdHandler creates a new ad handler instance
func NewAdHandler(capper *impressionUseCase.Capper, logger coreport.Logger) *AdHandler {
	return &AdHandler{
		capper: capper,
		logger: logger,
	}
}

// Eligibility handles the GET /ads/:adId/eligibility endpoint
func (h *AdHandler) Eligibility(c *gin.Context) {
	adID, err := uuid.Parse(c.Param("adId"))
	if err != nil {
		respondBadRequest(c, "Invalid ad ID format")
		return
	}

	eligible, err := h.capper.CanShowNow(c.Request.Context(), adID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{
		AdID:     adID.String(),
		Eligible: eligible,
	})
}

// RecordImpression handles the POST /ads/:adId/impressions endpoint
func (h *AdHandler) RecordImpression(c *gin.Context) {
	adID, err := uuid.Parse(c.Param("adId"))
	if err != nil {
		respondBadRequest(c, "Invalid ad ID format")
		return
	}

	if err := h.capper.TryRecordImpressionToday(c.Request.Context(), adID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImpressionResponse{
		AdID:     adID.String(),
		Recorded: true,
	})
}
