package persistent

import (
	"errors"
	"fmt"

	"travel-diary/internal/entity"
	"travel-diary/internal/model"
	"travel-diary/internal/moderation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiaryRepository interface {
	Create(diary *entity.Diary) error
	GetByID(id int64) (*entity.Diary, error)
	GetApprovedByID(id int64) (*entity.Diary, error)
	GetOwnedByID(id, authorID int64) (*entity.Diary, error)
	UpdateWithAttachments(diary *entity.Diary, images []entity.DiaryImage, video *entity.DiaryVideo, replaceImages, replaceVideo bool) error
	SoftDelete(id, authorID int64) error
	ApplyModeration(diaryID int64, expected entity.DiaryStatus, change moderation.Change, record *entity.AuditRecord) (*entity.Diary, error)
	ListPublic(limit, offset int, search string) ([]*entity.Diary, int64, error)
	ListForModeration(limit, offset int, status *entity.DiaryStatus, search string) ([]*entity.Diary, int64, error)
	ListByAuthor(authorID int64, limit, offset int) ([]*entity.Diary, int64, error)
	CountByStatus() (map[entity.DiaryStatus]int64, error)
}

type diaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) Create(diary *entity.Diary) error {
	diaryModel := ToDiaryModel(diary)

	return r.db.Transaction(func(tx *gorm.DB) error {
		images := diaryModel.Images
		video := diaryModel.Video
		diaryModel.Images = nil
		diaryModel.Video = nil

		if err := tx.Create(diaryModel).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].DiaryID = diaryModel.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		diaryModel.Images = images

		if video != nil {
			video.DiaryID = diaryModel.ID
			if err := tx.Create(video).Error; err != nil {
				return err
			}
			diaryModel.Video = video
		}

		*diary = *ToDiaryEntity(diaryModel)
		return nil
	})
}

func (r *diaryRepository) GetByID(id int64) (*entity.Diary, error) {
	return r.getOne("id = ? AND is_deleted = ?", id, false)
}

func (r *diaryRepository) GetApprovedByID(id int64) (*entity.Diary, error) {
	return r.getOne("id = ? AND status = ? AND is_deleted = ?", id, string(entity.StatusApproved), false)
}

func (r *diaryRepository) GetOwnedByID(id, authorID int64) (*entity.Diary, error) {
	return r.getOne("id = ? AND author_id = ? AND is_deleted = ?", id, authorID, false)
}

func (r *diaryRepository) getOne(cond string, args ...interface{}) (*entity.Diary, error) {
	var diaryModel model.DiaryModel
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("diary_images.image_order ASC")
	}).Preload("Video").Where(cond, args...).First(&diaryModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	diary := ToDiaryEntity(&diaryModel)
	if err := r.attachAuthors([]*entity.Diary{diary}); err != nil {
		return nil, err
	}
	return diary, nil
}

// UpdateWithAttachments persists title/content/status/reject-reason changes
// and, when requested, swaps the image set and the video wholesale. The old
// rows are removed and the new ones inserted in the same transaction so a
// concurrent reader never observes a diary without its attachments. The
// editable-status precondition is re-checked under FOR UPDATE, so an approve
// landing between the caller's read and this write fails with ErrConflict
// instead of being silently forced back to pending.
func (r *diaryRepository) UpdateWithAttachments(diary *entity.Diary, images []entity.DiaryImage, video *entity.DiaryVideo, replaceImages, replaceVideo bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current model.DiaryModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", diary.ID).
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}
		if current.IsDeleted {
			return entity.ErrNotFound
		}
		status := entity.DiaryStatus(current.Status)
		if status != entity.StatusPending && status != entity.StatusRejected {
			return fmt.Errorf("%w: diary %d is now %s", entity.ErrConflict, diary.ID, current.Status)
		}

		updates := map[string]interface{}{
			"title":         diary.Title,
			"content":       diary.Content,
			"status":        string(diary.Status),
			"reject_reason": diary.RejectReason,
		}
		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return err
		}

		if replaceImages {
			if err := tx.Where("diary_id = ?", diary.ID).Delete(&model.DiaryImageModel{}).Error; err != nil {
				return err
			}
			for i := range images {
				imageModel := ToDiaryImageModel(&images[i])
				imageModel.ID = 0
				imageModel.DiaryID = diary.ID
				if err := tx.Create(imageModel).Error; err != nil {
					return err
				}
			}
		}

		if replaceVideo {
			if err := tx.Where("diary_id = ?", diary.ID).Delete(&model.DiaryVideoModel{}).Error; err != nil {
				return err
			}
			if video != nil {
				videoModel := ToDiaryVideoModel(video)
				videoModel.ID = 0
				videoModel.DiaryID = diary.ID
				if err := tx.Create(videoModel).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (r *diaryRepository) SoftDelete(id, authorID int64) error {
	res := r.db.Model(&model.DiaryModel{}).
		Where("id = ? AND author_id = ? AND is_deleted = ?", id, authorID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// ApplyModeration commits one moderation decision: the diary row is locked
// with FOR UPDATE, re-checked against the status the caller decided on, and
// mutated together with the audit insert. Either both writes commit or
// neither does. A row whose status moved since the caller's read fails with
// ErrConflict instead of silently overwriting the other decision.
func (r *diaryRepository) ApplyModeration(diaryID int64, expected entity.DiaryStatus, change moderation.Change, record *entity.AuditRecord) (*entity.Diary, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var diaryModel model.DiaryModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", diaryID).
			First(&diaryModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}
		if diaryModel.IsDeleted {
			return entity.ErrNotFound
		}
		if entity.DiaryStatus(diaryModel.Status) != expected {
			return fmt.Errorf("%w: diary %d is now %s", entity.ErrConflict, diaryID, diaryModel.Status)
		}

		// Delete flips the flag and leaves status and reject_reason exactly
		// as they were.
		updates := map[string]interface{}{}
		if change.Delete {
			updates["is_deleted"] = true
		} else {
			updates["status"] = string(change.Status)
			updates["reject_reason"] = change.RejectReason
		}
		if err := tx.Model(&diaryModel).Updates(updates).Error; err != nil {
			return err
		}

		recordModel := &model.AuditRecordModel{
			DiaryID:     diaryID,
			ModeratorID: record.ModeratorID,
			Action:      string(record.Action),
			Reason:      record.Reason,
		}
		if err := tx.Create(recordModel).Error; err != nil {
			return err
		}
		*record = *ToAuditRecordEntity(recordModel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if change.Delete {
		// The diary is gone from every read path; return nothing to load.
		return nil, nil
	}
	return r.GetByID(diaryID)
}

func (r *diaryRepository) ListPublic(limit, offset int, search string) ([]*entity.Diary, int64, error) {
	base := func() *gorm.DB {
		q := r.db.Model(&model.DiaryModel{}).
			Where("diaries.status = ? AND diaries.is_deleted = ?", string(entity.StatusApproved), false)
		return applySearch(q, search)
	}
	return r.page(base, limit, offset)
}

func (r *diaryRepository) ListForModeration(limit, offset int, status *entity.DiaryStatus, search string) ([]*entity.Diary, int64, error) {
	base := func() *gorm.DB {
		q := r.db.Model(&model.DiaryModel{}).
			Where("diaries.is_deleted = ?", false)
		if status != nil {
			q = q.Where("diaries.status = ?", string(*status))
		}
		return applySearch(q, search)
	}
	return r.page(base, limit, offset)
}

func (r *diaryRepository) ListByAuthor(authorID int64, limit, offset int) ([]*entity.Diary, int64, error) {
	base := func() *gorm.DB {
		return r.db.Model(&model.DiaryModel{}).
			Where("diaries.author_id = ? AND diaries.is_deleted = ?", authorID, false)
	}
	return r.page(base, limit, offset)
}

func applySearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	pattern := "%" + search + "%"
	return q.Joins("JOIN users ON users.id = diaries.author_id").
		Where("(diaries.title ILIKE ? OR users.nickname ILIKE ?)", pattern, pattern)
}

// page runs the count and the page query off independent builds of the same
// base query, so gorm statement state is never shared between the two.
func (r *diaryRepository) page(base func() *gorm.DB, limit, offset int) ([]*entity.Diary, int64, error) {
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var diaryModels []model.DiaryModel
	q := base().Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("diary_images.image_order ASC")
	}).Preload("Video").Order("diaries.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&diaryModels).Error; err != nil {
		return nil, 0, err
	}

	diaries := make([]*entity.Diary, len(diaryModels))
	for i := range diaryModels {
		diaries[i] = ToDiaryEntity(&diaryModels[i])
	}
	if err := r.attachAuthors(diaries); err != nil {
		return nil, 0, err
	}
	return diaries, total, nil
}

// attachAuthors resolves authors with one IN query instead of embedding a
// user association on the diary model.
func (r *diaryRepository) attachAuthors(diaries []*entity.Diary) error {
	if len(diaries) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(diaries))
	seen := make(map[int64]bool)
	for _, d := range diaries {
		if !seen[d.AuthorID] {
			seen[d.AuthorID] = true
			ids = append(ids, d.AuthorID)
		}
	}

	var userModels []model.UserModel
	if err := r.db.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return err
	}

	byID := make(map[int64]*entity.User, len(userModels))
	for i := range userModels {
		byID[userModels[i].ID] = ToUserEntity(&userModels[i])
	}
	for _, d := range diaries {
		d.Author = byID[d.AuthorID]
	}
	return nil
}

func (r *diaryRepository) CountByStatus() (map[entity.DiaryStatus]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.db.Model(&model.DiaryModel{}).
		Select("status, COUNT(*) AS total").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[entity.DiaryStatus]int64{
		entity.StatusPending:  0,
		entity.StatusApproved: 0,
		entity.StatusRejected: 0,
	}
	for _, r := range rows {
		counts[entity.DiaryStatus(r.Status)] = r.Total
	}
	return counts, nil
}
