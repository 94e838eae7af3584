package model

import "time"

// AuditRecordModel rows are insert-only; nothing in the codebase updates or
// deletes them. Moderator and diary are referenced by id without navigation.
type AuditRecordModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DiaryID     int64     `gorm:"not null;index" json:"diary_id"`
	ModeratorID int64     `gorm:"not null;index" json:"moderator_id"`
	Action      string    `gorm:"type:varchar(20);not null" json:"action"`
	Reason      *string   `gorm:"type:text" json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

func (AuditRecordModel) TableName() string { return "audit_records" }
