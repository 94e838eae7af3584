package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"travel-diary/internal/entity"
	"travel-diary/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the known sentinels is logged and answered with an opaque 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// contextID reads an int64 identity stored by the auth middleware.
func contextID(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.GetString(key), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid diary id"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func formatDiaryResponse(diary *entity.Diary) map[string]interface{} {
	response := map[string]interface{}{
		"id":         diary.ID,
		"author_id":  diary.AuthorID,
		"title":      diary.Title,
		"content":    diary.Content,
		"status":     diary.Status,
		"images":     diary.Images,
		"created_at": diary.CreatedAt,
		"updated_at": diary.UpdatedAt,
	}

	if diary.RejectReason != nil {
		response["reject_reason"] = *diary.RejectReason
	}
	if diary.Video != nil {
		response["video"] = diary.Video
	}
	if diary.Author != nil {
		response["author"] = gin.H{
			"id":         diary.Author.ID,
			"nickname":   diary.Author.Nickname,
			"avatar_url": diary.Author.AvatarURL,
		}
	}

	return response
}

func formatDiaryList(diaries []*entity.Diary, total int64, page, size int) gin.H {
	items := make([]map[string]interface{}, len(diaries))
	for i, diary := range diaries {
		items[i] = formatDiaryResponse(diary)
	}
	return gin.H{
		"diaries": items,
		"total":   total,
		"page":    page,
		"size":    size,
	}
}

func formatAuditRecord(record *entity.AuditRecord) map[string]interface{} {
	response := map[string]interface{}{
		"id":           record.ID,
		"diary_id":     record.DiaryID,
		"moderator_id": record.ModeratorID,
		"action":       record.Action,
		"created_at":   record.CreatedAt.Format(time.RFC3339),
	}
	if record.Reason != nil {
		response["reason"] = *record.Reason
	}
	return response
}
