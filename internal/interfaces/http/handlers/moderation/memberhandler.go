package moderation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EchoNews615/komibot/internal/application/moderation/usecases"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
	"github.com/EchoNews615/komibot/internal/shared/utils"
)

// MemberHandler serves the member roster: sync, removal, the rollup
// list, and the per-member detail views.
type MemberHandler struct {
	syncMemberUC        usecases.SyncMemberExecutor
	syncMembersBatchUC  usecases.SyncMembersBatchExecutor
	removeMemberUC      usecases.RemoveMemberExecutor
	listMembersUC       usecases.ListMembersExecutor
	memberDetailUC      usecases.MemberDetailExecutor
	memberLogsUC        usecases.MemberLogsExecutor
	memberPunishmentsUC usecases.MemberPunishmentsExecutor
	logger              logger.Interface
}

func NewMemberHandler(
	syncMemberUC usecases.SyncMemberExecutor,
	syncMembersBatchUC usecases.SyncMembersBatchExecutor,
	removeMemberUC usecases.RemoveMemberExecutor,
	listMembersUC usecases.ListMembersExecutor,
	memberDetailUC usecases.MemberDetailExecutor,
	memberLogsUC usecases.MemberLogsExecutor,
	memberPunishmentsUC usecases.MemberPunishmentsExecutor,
) *MemberHandler {
	return &MemberHandler{
		syncMemberUC:        syncMemberUC,
		syncMembersBatchUC:  syncMembersBatchUC,
		removeMemberUC:      removeMemberUC,
		listMembersUC:       listMembersUC,
		memberDetailUC:      memberDetailUC,
		memberLogsUC:        memberLogsUC,
		memberPunishmentsUC: memberPunishmentsUC,
		logger:              logger.NewLogger(),
	}
}

// SyncMember handles POST /api/memberSync
func (h *MemberHandler) SyncMember(c *gin.Context) {
	var req SyncMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("memberId is required", "memberId"))
		return
	}

	if err := h.syncMemberUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}

// SyncMembersBatch handles POST /api/memberSyncBatch
func (h *MemberHandler) SyncMembersBatch(c *gin.Context) {
	var req SyncMembersBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("members array required", "members"))
		return
	}

	result, err := h.syncMembersBatchUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"upserted": result.Upserted})
}

// RemoveMember handles POST /api/memberRemove
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	var req MemberIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("memberId is required", "memberId"))
		return
	}

	if err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{MemberID: req.MemberID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}

// ListMembers handles GET /api/members. The response is a bare array;
// the member table view binds to it directly.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var guildScope *string
	if guild := c.Query("guild"); guild != "" {
		guildScope = &guild
	}

	items, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{GuildScope: guildScope})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// MemberDetail handles GET /api/member/:id
func (h *MemberHandler) MemberDetail(c *gin.Context) {
	detail, err := h.memberDetailUC.Execute(c.Request.Context(), usecases.MemberDetailQuery{
		MemberID: c.Param("id"),
		Now:      time.Now().UTC(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"member":      detail.Member,
		"stats":       detail.Stats,
		"punishments": detail.Punishments,
		"logs":        detail.Logs,
	})
}

// MemberLogs handles GET /api/member/:id/logs
func (h *MemberHandler) MemberLogs(c *gin.Context) {
	logs, err := h.memberLogsUC.Execute(c.Request.Context(), usecases.MemberLogsQuery{MemberID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"logs": logs})
}

// MemberPunishments handles GET /api/member/:id/punishments
func (h *MemberHandler) MemberPunishments(c *gin.Context) {
	punishments, err := h.memberPunishmentsUC.Execute(c.Request.Context(), usecases.MemberPunishmentsQuery{MemberID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"punishments": punishments})
}
