package usecase

import (
	"context"
	"fmt"

	"travel-diary/internal/entity"
	"travel-diary/internal/moderation"
	"travel-diary/internal/repo/persistent"
	"travel-diary/pkg/logger"
	"travel-diary/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type ModerationUseCase interface {
	Review(moderatorID int64, role entity.ModeratorRole, diaryID int64, action entity.AuditAction, reason string) (*entity.Diary, error)
	List(page, size int, status *entity.DiaryStatus, search string) ([]*entity.Diary, int64, error)
	Detail(diaryID int64) (*entity.Diary, []*entity.AuditRecord, error)
	Stats() (map[entity.DiaryStatus]int64, error)
}

type moderationUseCase struct {
	diaryRepo   persistent.DiaryRepository
	auditRepo   persistent.AuditRepository
	queueClient *queue.Client
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewModerationUseCase(
	diaryRepo persistent.DiaryRepository,
	auditRepo persistent.AuditRepository,
	queueClient *queue.Client,
	redisClient *redis.Client,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		diaryRepo:   diaryRepo,
		auditRepo:   auditRepo,
		queueClient: queueClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Review applies one moderation action. The diary update and the audit
// insert commit together in the repository; on success exactly one audit
// record exists for the decision. Author edits never pass through here, so
// they leave no audit trail.
func (uc *moderationUseCase) Review(moderatorID int64, role entity.ModeratorRole, diaryID int64, action entity.AuditAction, reason string) (*entity.Diary, error) {
	if !moderation.KnownAction(action) {
		return nil, fmt.Errorf("%w: unknown action %q", entity.ErrValidation, action)
	}
	if !moderation.Can(role, action) {
		return nil, fmt.Errorf("%w: role %s may not %s", entity.ErrPermissionDenied, role, action)
	}

	// Deleted diaries are invisible here too: GetByID excludes them, so the
	// caller sees NotFound rather than learning the diary exists.
	diary, err := uc.diaryRepo.GetByID(diaryID)
	if err != nil {
		return nil, err
	}

	change, err := moderation.Decide(diary.Status, action, reason)
	if err != nil {
		return nil, err
	}

	record := &entity.AuditRecord{
		DiaryID:     diaryID,
		ModeratorID: moderatorID,
		Action:      action,
		Reason:      change.RejectReason,
	}

	updated, err := uc.diaryRepo.ApplyModeration(diaryID, diary.Status, change, record)
	if err != nil {
		return nil, err
	}

	uc.invalidateDetail(diaryID)
	uc.publishResult(diary, action, change)

	return updated, nil
}

func (uc *moderationUseCase) List(page, size int, status *entity.DiaryStatus, search string) ([]*entity.Diary, int64, error) {
	limit, offset := paginate(page, size)
	return uc.diaryRepo.ListForModeration(limit, offset, status, search)
}

func (uc *moderationUseCase) Detail(diaryID int64) (*entity.Diary, []*entity.AuditRecord, error) {
	diary, err := uc.diaryRepo.GetByID(diaryID)
	if err != nil {
		return nil, nil, err
	}
	records, err := uc.auditRepo.ListByDiary(diaryID)
	if err != nil {
		return nil, nil, err
	}
	return diary, records, nil
}

func (uc *moderationUseCase) Stats() (map[entity.DiaryStatus]int64, error) {
	return uc.diaryRepo.CountByStatus()
}

// publishResult is best-effort: the decision is already committed, so a
// broker failure is logged and the author just misses the notification.
func (uc *moderationUseCase) publishResult(diary *entity.Diary, action entity.AuditAction, change moderation.Change) {
	if uc.queueClient == nil {
		return
	}

	result := queue.ModerationResult{
		DiaryID:  diary.ID,
		AuthorID: diary.AuthorID,
		Action:   string(action),
	}
	if change.RejectReason != nil {
		result.Reason = *change.RejectReason
	}

	go func() {
		if err := uc.queueClient.PublishModerationResult(result); err != nil {
			uc.logger.Error("Failed to publish moderation result for diary %d: %v", diary.ID, err)
		}
	}()
}

func (uc *moderationUseCase) invalidateDetail(diaryID int64) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(context.Background(), detailCacheKey(diaryID)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate diary cache %d: %v", diaryID, err)
	}
}
