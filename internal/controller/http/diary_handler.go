package http

import (
	"mime/multipart"
	"net/http"

	"travel-diary/internal/usecase"
	"travel-diary/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DiaryHandler struct {
	diaryUseCase usecase.DiaryUseCase
	logger       *logger.Logger
}

func NewDiaryHandler(diaryUseCase usecase.DiaryUseCase, logger *logger.Logger) *DiaryHandler {
	return &DiaryHandler{
		diaryUseCase: diaryUseCase,
		logger:       logger,
	}
}

type CreateDiaryRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// CreateDiary godoc
// @Summary      Create a new diary
// @Description  Submit a travel diary with 1-9 images and an optional video. The diary starts in pending status and is not publicly visible until approved.
// @Tags         diaries
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Diary title"
// @Param        content formData string true "Diary content"
// @Param        images formData file true "Image files (1-9, order is preserved)"
// @Param        video formData file false "Video file"
// @Param        cover formData file false "Video cover image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /diaries [post]
func (h *DiaryHandler) CreateDiary(c *gin.Context) {
	authorID, ok := contextID(c, "user_id")
	if !ok {
		return
	}

	var req CreateDiaryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}

	imageFiles := form.File["images"]
	videoFile := firstFile(form, "video")
	coverFile := firstFile(form, "cover")

	diary, err := h.diaryUseCase.Create(authorID, req.Title, req.Content, imageFiles, videoFile, coverFile)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, formatDiaryResponse(diary))
}

// UpdateDiary godoc
// @Summary      Update a diary
// @Description  Edit an owned diary that is pending or rejected. A successful edit resubmits the diary: its status returns to pending. Supplying images or a video replaces the existing set.
// @Tags         diaries
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Diary ID"
// @Param        title formData string false "New title"
// @Param        content formData string false "New content"
// @Param        images formData file false "Replacement image files (1-9)"
// @Param        video formData file false "Replacement video file"
// @Param        cover formData file false "Video cover image"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /diaries/{id} [put]
func (h *DiaryHandler) UpdateDiary(c *gin.Context) {
	authorID, ok := contextID(c, "user_id")
	if !ok {
		return
	}
	diaryID, ok := pathID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}

	var title, content *string
	if v, exists := firstValue(form, "title"); exists {
		title = &v
	}
	if v, exists := firstValue(form, "content"); exists {
		content = &v
	}

	imageFiles := form.File["images"]
	videoFile := firstFile(form, "video")
	coverFile := firstFile(form, "cover")

	diary, err := h.diaryUseCase.Update(authorID, diaryID, title, content, imageFiles, videoFile, coverFile)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatDiaryResponse(diary))
}

// DeleteDiary godoc
// @Summary      Delete a diary
// @Description  Soft delete an owned diary. The diary disappears from every listing but its rows are retained.
// @Tags         diaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Diary ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /diaries/{id} [delete]
func (h *DiaryHandler) DeleteDiary(c *gin.Context) {
	authorID, ok := contextID(c, "user_id")
	if !ok {
		return
	}
	diaryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.diaryUseCase.Delete(authorID, diaryID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diary deleted successfully"})
}

// GetDiary godoc
// @Summary      Get diary by ID
// @Description  Get an approved diary. Pending, rejected and deleted diaries answer 404.
// @Tags         diaries
// @Accept       json
// @Produce      json
// @Param        id path int true "Diary ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /diaries/{id} [get]
func (h *DiaryHandler) GetDiary(c *gin.Context) {
	diaryID, ok := pathID(c)
	if !ok {
		return
	}

	diary, err := h.diaryUseCase.GetPublic(diaryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatDiaryResponse(diary))
}

// ListDiaries godoc
// @Summary      List approved diaries
// @Description  Page through approved diaries, optionally filtered by a title or author nickname search.
// @Tags         diaries
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size (default 10)"
// @Param        search query string false "Match against title or author nickname"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /diaries [get]
func (h *DiaryHandler) ListDiaries(c *gin.Context) {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)
	search := c.Query("search")

	diaries, total, err := h.diaryUseCase.ListPublic(page, size, search)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatDiaryList(diaries, total, page, size))
}

// ListMyDiaries godoc
// @Summary      List own diaries
// @Description  Page through the authenticated user's diaries in every status, including rejected ones with their reasons.
// @Tags         diaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /diaries/mine [get]
func (h *DiaryHandler) ListMyDiaries(c *gin.Context) {
	authorID, ok := contextID(c, "user_id")
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)

	diaries, total, err := h.diaryUseCase.ListByAuthor(authorID, page, size)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatDiaryList(diaries, total, page, size))
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	if files := form.File[field]; len(files) > 0 {
		return files[0]
	}
	return nil
}

func firstValue(form *multipart.Form, field string) (string, bool) {
	if values := form.Value[field]; len(values) > 0 {
		return values[0], true
	}
	return "", false
}
