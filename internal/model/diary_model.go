package model

import (
	"time"
)

type DiaryModel struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID     int64             `gorm:"not null;index" json:"author_id"`
	Title        string            `gorm:"type:varchar(255);not null" json:"title"`
	Content      string            `gorm:"type:text;not null" json:"content"`
	Status       string            `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RejectReason *string           `gorm:"type:text" json:"reject_reason"`
	IsDeleted    bool              `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Images       []DiaryImageModel `gorm:"foreignKey:DiaryID" json:"images,omitempty"`
	Video        *DiaryVideoModel  `gorm:"foreignKey:DiaryID" json:"video,omitempty"`
}

func (DiaryModel) TableName() string { return "diaries" }

type DiaryImageModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DiaryID    int64     `gorm:"not null;index" json:"diary_id"`
	ImageURL   string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ImageOrder int       `gorm:"not null;default:0;index" json:"image_order"`
	CreatedAt  time.Time `json:"created_at"`
}

func (DiaryImageModel) TableName() string { return "diary_images" }

type DiaryVideoModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DiaryID   int64     `gorm:"not null;uniqueIndex" json:"diary_id"`
	VideoURL  string    `gorm:"type:varchar(500);not null" json:"video_url"`
	CoverURL  string    `gorm:"type:varchar(500)" json:"cover_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (DiaryVideoModel) TableName() string { return "diary_videos" }
