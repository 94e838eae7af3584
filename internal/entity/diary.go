package entity

import "time"

type DiaryStatus string

const (
	StatusPending  DiaryStatus = "pending"
	StatusApproved DiaryStatus = "approved"
	StatusRejected DiaryStatus = "rejected"
)

// ValidStatus reports whether s is one of the three review states.
func ValidStatus(s DiaryStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Diary is a travel diary submitted by a user. RejectReason is non-nil
// exactly when Status is rejected. IsDeleted is a one-way flag: a deleted
// diary stays stored but is invisible to every listing and lookup.
type Diary struct {
	ID           int64        `json:"id"`
	AuthorID     int64        `json:"author_id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	Status       DiaryStatus  `json:"status"`
	RejectReason *string      `json:"reject_reason,omitempty"`
	IsDeleted    bool         `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Images       []DiaryImage `json:"images"`
	Video        *DiaryVideo  `json:"video,omitempty"`
	Author       *User        `json:"author,omitempty"`
}

// DiaryImage is one image of a diary. ImageOrder is the 0-based position
// the image was submitted in; the set is replaced wholesale on edit.
type DiaryImage struct {
	ID         int64     `json:"id"`
	DiaryID    int64     `json:"diary_id"`
	ImageURL   string    `json:"image_url"`
	ImageOrder int       `json:"image_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// DiaryVideo is the optional single video of a diary.
type DiaryVideo struct {
	ID        int64     `json:"id"`
	DiaryID   int64     `json:"diary_id"`
	VideoURL  string    `json:"video_url"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
