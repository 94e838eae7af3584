package entity

import "time"

type AuditAction string

const (
	ActionApprove AuditAction = "approve"
	ActionReject  AuditAction = "reject"
	ActionDelete  AuditAction = "delete"
)

// AuditRecord is one moderation decision. Records are append-only and
// reference the diary and moderator by id only.
type AuditRecord struct {
	ID          int64       `json:"id"`
	DiaryID     int64       `json:"diary_id"`
	ModeratorID int64       `json:"moderator_id"`
	Action      AuditAction `json:"action"`
	Reason      *string     `json:"reason,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
