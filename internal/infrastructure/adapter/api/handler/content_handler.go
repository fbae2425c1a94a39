package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	contentUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/content"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/dto"
)

// ContentHandler handles content-related HTTP requests
type ContentHandler struct {
	contentService *contentUseCase.Service
	logger         coreport.Logger
}

// NewContentHandler creates a new content handler instance
func NewContentHandler(contentService *contentUseCase.Service, logger coreport.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// contentToResponse maps a content entity to its API representation
func contentToResponse(item *entity.ContentItem) dto.ContentResponse {
	return dto.ContentResponse{
		ID:             item.ID.String(),
		OwnerID:        item.OwnerID.String(),
		Kind:           string(item.Kind),
		Body:           item.Body,
		MediaURL:       item.MediaURL,
		ApprovalStatus: string(item.ApprovalStatus),
		RewardIssued:   item.RewardIssued,
		Active:         item.Active,
		BudgetCents:    item.BudgetCents,
		DailyCap:       item.DailyCap,
		CreatedAt:      item.CreatedAt,
	}
}

// Create handles the POST /content endpoint
func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid content request format", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		respondBadRequest(c, "Invalid owner ID format")
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), contentUseCase.CreateRequest{
		OwnerID:     ownerID,
		Kind:        entity.ContentKind(req.Kind),
		Body:        req.Body,
		MediaURL:    req.MediaURL,
		BudgetCents: req.BudgetCents,
		DailyCap:    req.DailyCap,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contentToResponse(item))
}

// Get handles the GET /content/:contentId endpoint
func (h *ContentHandler) Get(c *gin.Context) {
	contentID, err := uuid.Parse(c.Param("contentId"))
	if err != nil {
		respondBadRequest(c, "Invalid content ID format")
		return
	}

	item, err := h.contentService.Get(c.Request.Context(), contentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contentToResponse(item))
}
