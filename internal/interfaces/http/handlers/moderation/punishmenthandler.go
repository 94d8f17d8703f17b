package moderation

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EchoNews615/komibot/internal/application/moderation/usecases"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
	"github.com/EchoNews615/komibot/internal/shared/utils"
)

// PunishmentHandler serves the fact-recording routes and the escalation
// policy query.
type PunishmentHandler struct {
	appendLogUC         usecases.AppendLogExecutor
	recordPunishmentUC  usecases.RecordPunishmentExecutor
	recordTicketBatchUC usecases.RecordTicketBatchExecutor
	clearMemberUC       usecases.ClearMemberExecutor
	clearAllUC          usecases.ClearAllExecutor
	nextActionUC        usecases.NextActionExecutor
	logger              logger.Interface
}

func NewPunishmentHandler(
	appendLogUC usecases.AppendLogExecutor,
	recordPunishmentUC usecases.RecordPunishmentExecutor,
	recordTicketBatchUC usecases.RecordTicketBatchExecutor,
	clearMemberUC usecases.ClearMemberExecutor,
	clearAllUC usecases.ClearAllExecutor,
	nextActionUC usecases.NextActionExecutor,
) *PunishmentHandler {
	return &PunishmentHandler{
		appendLogUC:         appendLogUC,
		recordPunishmentUC:  recordPunishmentUC,
		recordTicketBatchUC: recordTicketBatchUC,
		clearMemberUC:       clearMemberUC,
		clearAllUC:          clearAllUC,
		nextActionUC:        nextActionUC,
		logger:              logger.NewLogger(),
	}
}

// AppendLog handles POST /api/logs
func (h *PunishmentHandler) AppendLog(c *gin.Context) {
	var req AppendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("memberId and message are required", "memberId"))
		return
	}

	if err := h.appendLogUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}

// Punish handles POST /api/punish/:kind
func (h *PunishmentHandler) Punish(c *gin.Context) {
	var req PunishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("memberId is required", "memberId"))
		return
	}

	if err := h.recordPunishmentUC.Execute(c.Request.Context(), req.ToCommand(c.Param("kind"))); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}

// RecordTicket handles POST /api/ticket
func (h *PunishmentHandler) RecordTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("agentId is required", "agentId"))
		return
	}

	if err := h.recordTicketBatchUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}

// ClearMember handles POST /api/clear/member
func (h *PunishmentHandler) ClearMember(c *gin.Context) {
	var req MemberIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("memberId is required", "memberId"))
		return
	}

	deleted, err := h.clearMemberUC.Execute(c.Request.Context(), usecases.ClearMemberCommand{MemberID: req.MemberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"deleted": deleted})
}

// ClearAll handles POST /api/clear/all
func (h *PunishmentHandler) ClearAll(c *gin.Context) {
	deleted, err := h.clearAllUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"deleted": deleted})
}

// NextAction handles GET /api/policy/next
func (h *PunishmentHandler) NextAction(c *gin.Context) {
	memberID := c.Query("memberId")
	if memberID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("memberId is required", "memberId"))
		return
	}

	now := time.Now().UTC()
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("at must be an RFC3339 timestamp", "at"))
			return
		}
		now = parsed
	}

	next, err := h.nextActionUC.Execute(c.Request.Context(), usecases.NextActionQuery{MemberID: memberID, Now: now})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"next": next})
}
