package http

import (
	"net/http"

	"travel-diary/internal/entity"
	"travel-diary/internal/usecase"
	"travel-diary/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

// ListDiaries godoc
// @Summary      List diaries for moderation
// @Description  Page through diaries in any status, optionally filtered by status or a title/nickname search. Deleted diaries never appear.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size (default 10)"
// @Param        status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param        search query string false "Match against title or author nickname"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/diaries [get]
func (h *ModerationHandler) ListDiaries(c *gin.Context) {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)
	search := c.Query("search")

	var status *entity.DiaryStatus
	if raw := c.Query("status"); raw != "" {
		s := entity.DiaryStatus(raw)
		if !entity.ValidStatus(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		status = &s
	}

	diaries, total, err := h.moderationUseCase.List(page, size, status, search)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatDiaryList(diaries, total, page, size))
}

// GetDiary godoc
// @Summary      Get diary with audit history
// @Description  Get a diary in any status together with its full audit trail, newest decision first.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Diary ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/diaries/{id} [get]
func (h *ModerationHandler) GetDiary(c *gin.Context) {
	diaryID, ok := pathID(c)
	if !ok {
		return
	}

	diary, records, err := h.moderationUseCase.Detail(diaryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	audits := make([]map[string]interface{}, len(records))
	for i, record := range records {
		audits[i] = formatAuditRecord(record)
	}

	c.JSON(http.StatusOK, gin.H{
		"diary":  formatDiaryResponse(diary),
		"audits": audits,
	})
}

type ReviewRequest struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

// ReviewDiary godoc
// @Summary      Apply a moderation decision
// @Description  Approve, reject or delete a diary. Rejection requires a reason. Auditors may approve and reject; deletion is admin only. Every decision is recorded in the audit trail.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Diary ID"
// @Param        request body ReviewRequest true "Decision"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/diaries/{id}/audit [post]
func (h *ModerationHandler) ReviewDiary(c *gin.Context) {
	moderatorID, ok := contextID(c, "moderator_id")
	if !ok {
		return
	}
	diaryID, ok := pathID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := entity.ModeratorRole(c.GetString("role"))
	diary, err := h.moderationUseCase.Review(moderatorID, role, diaryID, entity.AuditAction(req.Action), req.Reason)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if diary == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Diary deleted successfully"})
		return
	}
	c.JSON(http.StatusOK, formatDiaryResponse(diary))
}

// Stats godoc
// @Summary      Moderation queue statistics
// @Description  Diary counts per status, excluding deleted diaries.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      500  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *ModerationHandler) Stats(c *gin.Context) {
	counts, err := h.moderationUseCase.Stats()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending":  counts[entity.StatusPending],
		"approved": counts[entity.StatusApproved],
		"rejected": counts[entity.StatusRejected],
	})
}
