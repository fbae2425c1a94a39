package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	ledgerUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
	quotaUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/quota"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledgerService *ledgerUseCase.Service
	quotaTracker  *quotaUseCase.Tracker
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(
	ledgerService *ledgerUseCase.Service,
	quotaTracker *quotaUseCase.Tracker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
		quotaTracker:  quotaTracker,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// GetBalance handles the GET /users/:userId/balance endpoint
func (h *AccountHandler) GetBalance(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	account, err := h.ledgerService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:             account.UserID.String(),
		WalletBalance:      account.WalletBalance(),
		ZukaBalance:        account.ZukaBalance(),
		VerificationStatus: account.VerificationStatus,
		UpdatedAt:          account.UpdatedAt,
	})
}

// ListTransactions handles the GET /users/:userId/transactions endpoint
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			respondBadRequest(c, "Invalid limit parameter")
			return
		}
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, dto.TransactionResponse{
			ID:           tx.ID.String(),
			Balance:      string(tx.Balance),
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			Type:         string(tx.Type),
			Reference:    tx.Reference,
			CreatedAt:    tx.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// GetLimits handles the GET /users/:userId/limits endpoint
func (h *AccountHandler) GetLimits(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	remaining, err := h.quotaTracker.RemainingToday(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.LimitsResponse{
		UserID: userID.String(),
		Date:   entity.DateKey(h.timeProvider.Now()),
	}
	resp.Remaining.Posts = remaining.Posts
	resp.Remaining.Likes = remaining.Likes
	resp.Remaining.Comments = remaining.Comments
	c.JSON(http.StatusOK, resp)
}
