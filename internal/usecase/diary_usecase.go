package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"travel-diary/internal/entity"
	"travel-diary/internal/repo/persistent"
	"travel-diary/pkg/logger"
	"travel-diary/pkg/sanitize"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	maxImagesPerDiary = 9
	defaultPageSize   = 10
	detailCacheTTL    = 24 * time.Hour
)

// Uploader stores a file and returns its public URL. Satisfied by
// pkg/s3.Client.
type Uploader interface {
	UploadFile(key string, file multipart.File, contentType string) (string, error)
}

type DiaryUseCase interface {
	Create(authorID int64, title, content string, imageFiles []*multipart.FileHeader, videoFile, coverFile *multipart.FileHeader) (*entity.Diary, error)
	Update(authorID, diaryID int64, title, content *string, imageFiles []*multipart.FileHeader, videoFile, coverFile *multipart.FileHeader) (*entity.Diary, error)
	Delete(authorID, diaryID int64) error
	GetPublic(diaryID int64) (*entity.Diary, error)
	ListPublic(page, size int, search string) ([]*entity.Diary, int64, error)
	ListByAuthor(authorID int64, page, size int) ([]*entity.Diary, int64, error)
}

type diaryUseCase struct {
	diaryRepo   persistent.DiaryRepository
	uploader    Uploader
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewDiaryUseCase(
	diaryRepo persistent.DiaryRepository,
	uploader Uploader,
	redisClient *redis.Client,
	logger *logger.Logger,
) DiaryUseCase {
	return &diaryUseCase{
		diaryRepo:   diaryRepo,
		uploader:    uploader,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *diaryUseCase) Create(authorID int64, title, content string, imageFiles []*multipart.FileHeader, videoFile, coverFile *multipart.FileHeader) (*entity.Diary, error) {
	title = sanitize.Title(title)
	content = sanitize.Content(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", entity.ErrValidation)
	}
	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", entity.ErrValidation)
	}
	if len(imageFiles) > maxImagesPerDiary {
		return nil, fmt.Errorf("%w: at most %d images allowed", entity.ErrValidation, maxImagesPerDiary)
	}

	images, err := uc.uploadImages(authorID, imageFiles)
	if err != nil {
		return nil, err
	}
	video, err := uc.uploadVideo(authorID, videoFile, coverFile)
	if err != nil {
		return nil, err
	}

	diary := &entity.Diary{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
		Status:   entity.StatusPending,
		Images:   images,
		Video:    video,
	}

	if err := uc.diaryRepo.Create(diary); err != nil {
		return nil, fmt.Errorf("failed to create diary: %w", err)
	}
	return diary, nil
}

// Update edits an owned diary that is pending or rejected. Any successful
// edit is an implicit re-submission: the status goes back to pending and the
// reject reason is cleared. Edits are not audited.
func (uc *diaryUseCase) Update(authorID, diaryID int64, title, content *string, imageFiles []*multipart.FileHeader, videoFile, coverFile *multipart.FileHeader) (*entity.Diary, error) {
	diary, err := uc.diaryRepo.GetOwnedByID(diaryID, authorID)
	if err != nil {
		return nil, err
	}

	if diary.Status != entity.StatusPending && diary.Status != entity.StatusRejected {
		return nil, fmt.Errorf("%w: only pending or rejected diaries can be edited", entity.ErrInvalidState)
	}

	if title != nil {
		clean := sanitize.Title(*title)
		if clean == "" {
			return nil, fmt.Errorf("%w: title must not be blank", entity.ErrValidation)
		}
		diary.Title = clean
	}
	if content != nil {
		clean := sanitize.Content(*content)
		if clean == "" {
			return nil, fmt.Errorf("%w: content must not be blank", entity.ErrValidation)
		}
		diary.Content = clean
	}

	diary.Status = entity.StatusPending
	diary.RejectReason = nil

	var newImages []entity.DiaryImage
	replaceImages := len(imageFiles) > 0
	if replaceImages {
		if len(imageFiles) > maxImagesPerDiary {
			return nil, fmt.Errorf("%w: at most %d images allowed", entity.ErrValidation, maxImagesPerDiary)
		}
		newImages, err = uc.uploadImages(authorID, imageFiles)
		if err != nil {
			return nil, err
		}
	}

	var newVideo *entity.DiaryVideo
	replaceVideo := videoFile != nil
	if replaceVideo {
		newVideo, err = uc.uploadVideo(authorID, videoFile, coverFile)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.diaryRepo.UpdateWithAttachments(diary, newImages, newVideo, replaceImages, replaceVideo); err != nil {
		return nil, err
	}

	uc.invalidateDetail(diaryID)
	return uc.diaryRepo.GetOwnedByID(diaryID, authorID)
}

func (uc *diaryUseCase) Delete(authorID, diaryID int64) error {
	if err := uc.diaryRepo.SoftDelete(diaryID, authorID); err != nil {
		return err
	}
	uc.invalidateDetail(diaryID)
	return nil
}

func (uc *diaryUseCase) GetPublic(diaryID int64) (*entity.Diary, error) {
	if cached := uc.cachedDetail(diaryID); cached != nil {
		return cached, nil
	}

	diary, err := uc.diaryRepo.GetApprovedByID(diaryID)
	if err != nil {
		return nil, err
	}
	uc.cacheDetail(diary)
	return diary, nil
}

func (uc *diaryUseCase) ListPublic(page, size int, search string) ([]*entity.Diary, int64, error) {
	limit, offset := paginate(page, size)
	return uc.diaryRepo.ListPublic(limit, offset, search)
}

func (uc *diaryUseCase) ListByAuthor(authorID int64, page, size int) ([]*entity.Diary, int64, error) {
	limit, offset := paginate(page, size)
	return uc.diaryRepo.ListByAuthor(authorID, limit, offset)
}

func (uc *diaryUseCase) uploadImages(authorID int64, files []*multipart.FileHeader) ([]entity.DiaryImage, error) {
	images := make([]entity.DiaryImage, 0, len(files))
	for i, file := range files {
		url, err := uc.uploadOne(authorID, file, "image/jpeg")
		if err != nil {
			return nil, err
		}
		images = append(images, entity.DiaryImage{ImageURL: url, ImageOrder: i})
	}
	return images, nil
}

func (uc *diaryUseCase) uploadVideo(authorID int64, videoFile, coverFile *multipart.FileHeader) (*entity.DiaryVideo, error) {
	if videoFile == nil {
		return nil, nil
	}

	videoURL, err := uc.uploadOne(authorID, videoFile, "video/mp4")
	if err != nil {
		return nil, err
	}

	video := &entity.DiaryVideo{VideoURL: videoURL}
	if coverFile != nil {
		coverURL, err := uc.uploadOne(authorID, coverFile, "image/jpeg")
		if err != nil {
			return nil, err
		}
		video.CoverURL = coverURL
	}
	return video, nil
}

func (uc *diaryUseCase) uploadOne(authorID int64, file *multipart.FileHeader, defaultContentType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	key := fmt.Sprintf("diaries/%d/%s%s", authorID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := uc.uploader.UploadFile(key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return url, nil
}

func detailCacheKey(diaryID int64) string {
	return fmt.Sprintf("diary:%d", diaryID)
}

func (uc *diaryUseCase) cachedDetail(diaryID int64) *entity.Diary {
	if uc.redisClient == nil {
		return nil
	}
	data, err := uc.redisClient.Get(context.Background(), detailCacheKey(diaryID)).Bytes()
	if err != nil {
		return nil
	}
	var diary entity.Diary
	if err := json.Unmarshal(data, &diary); err != nil {
		return nil
	}
	return &diary
}

func (uc *diaryUseCase) cacheDetail(diary *entity.Diary) {
	if uc.redisClient == nil {
		return
	}
	data, err := json.Marshal(diary)
	if err != nil {
		return
	}
	if err := uc.redisClient.Set(context.Background(), detailCacheKey(diary.ID), data, detailCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache diary %d: %v", diary.ID, err)
	}
}

func (uc *diaryUseCase) invalidateDetail(diaryID int64) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(context.Background(), detailCacheKey(diaryID)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate diary cache %d: %v", diaryID, err)
	}
}

// paginate maps a 1-based page and size to limit/offset. Out-of-range pages
// yield an empty result rather than an error.
func paginate(page, size int) (limit, offset int) {
	if size < 1 {
		size = defaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}
