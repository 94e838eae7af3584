package persistent

import (
	"travel-diary/internal/entity"
	"travel-diary/internal/model"

	"gorm.io/gorm"
)

// AuditRepository is read-only: audit rows are only ever written inside the
// moderation transaction in DiaryRepository.ApplyModeration.
type AuditRepository interface {
	ListByDiary(diaryID int64) ([]*entity.AuditRecord, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) ListByDiary(diaryID int64) ([]*entity.AuditRecord, error) {
	var recordModels []model.AuditRecordModel
	err := r.db.Where("diary_id = ?", diaryID).
		Order("created_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entity.AuditRecord, len(recordModels))
	for i := range recordModels {
		records[i] = ToAuditRecordEntity(&recordModels[i])
	}
	return records, nil
}
