package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	adminUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/admin"
	approvalUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/approval"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles privileged HTTP requests. The caller's identity comes
// from the X-Admin-ID header set by the authenticating proxy; role checks
// happen in the use cases, so a non-admin identity gets 403 regardless.
type AdminHandler struct {
	adminService *adminUseCase.Service
	stateMachine *approvalUseCase.StateMachine
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	adminService *adminUseCase.Service,
	stateMachine *approvalUseCase.StateMachine,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		stateMachine: stateMachine,
		logger:       logger,
	}
}

// adminIdentity extracts the acting admin's ID from the X-Admin-ID header
func (h *AdminHandler) adminIdentity(c *gin.Context) (uuid.UUID, bool) {
	header := c.GetHeader("X-Admin-ID")
	if header == "" {
		respondBadRequest(c, "Missing required header: X-Admin-ID")
		return uuid.Nil, false
	}
	adminID, err := uuid.Parse(header)
	if err != nil {
		respondBadRequest(c, "Invalid X-Admin-ID format")
		return uuid.Nil, false
	}
	return adminID, true
}

// Transition handles the POST /admin/content/:contentId/approval endpoint
func (h *AdminHandler) Transition(c *gin.Context) {
	adminID, ok := h.adminIdentity(c)
	if !ok {
		return
	}

	contentID, err := uuid.Parse(c.Param("contentId"))
	if err != nil {
		respondBadRequest(c, "Invalid content ID format")
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.stateMachine.Transition(c.Request.Context(), adminID, contentID, entity.ApprovalStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contentToResponse(item))
}

// AdjustBalance handles the POST /admin/users/:userId/balance-adjustments endpoint
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	adminID, ok := h.adminIdentity(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}
	if req.WalletDelta == 0 && req.ZukaDelta == 0 {
		respondBadRequest(c, "At least one of walletDelta or zukaDelta must be non-zero")
		return
	}

	account, err := h.adminService.AdjustBalance(c.Request.Context(), adminID, userID, req.WalletDelta, req.ZukaDelta, req.Reason)
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

// UpdateVerification handles the PUT /admin/users/:userId/verification endpoint
func (h *AdminHandler) UpdateVerification(c *gin.Context) {
	adminID, ok := h.adminIdentity(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	var req dto.UpdateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.adminService.UpdateVerificationStatus(c.Request.Context(), adminID, userID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteUser handles the DELETE /admin/users/:userId endpoint
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.adminIdentity(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	var req dto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), adminID, userID, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignRole handles the POST /admin/users/:userId/roles endpoint
func (h *AdminHandler) AssignRole(c *gin.Context) {
	adminID, ok := h.adminIdentity(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.adminService.AssignRole(c.Request.Context(), adminID, userID, entity.Role(req.Role)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAuditLog handles the GET /admin/audit-log endpoint
func (h *AdminHandler) ListAuditLog(c *gin.Context) {
	adminID, ok := h.adminIdentity(c)
	if !ok {
		return
	}

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		var err error
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			respondBadRequest(c, "Invalid limit parameter")
			return
		}
	}

	entries, err := h.adminService.ListAuditLog(c.Request.Context(), adminID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.AuditLogResponse{
			ID:         entry.ID.String(),
			AdminID:    entry.AdminID.String(),
			Action:     entry.Action,
			TargetType: entry.TargetType,
			TargetID:   entry.TargetID.String(),
			Details:    entry.Details,
			CreatedAt:  entry.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}
