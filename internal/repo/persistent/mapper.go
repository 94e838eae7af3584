package persistent

import (
	"travel-diary/internal/entity"
	"travel-diary/internal/model"
)

func ToDiaryEntity(m *model.DiaryModel) *entity.Diary {
	if m == nil {
		return nil
	}

	diary := &entity.Diary{
		ID:           m.ID,
		AuthorID:     m.AuthorID,
		Title:        m.Title,
		Content:      m.Content,
		Status:       entity.DiaryStatus(m.Status),
		RejectReason: m.RejectReason,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if len(m.Images) > 0 {
		diary.Images = make([]entity.DiaryImage, len(m.Images))
		for i := range m.Images {
			diary.Images[i] = *ToDiaryImageEntity(&m.Images[i])
		}
	}
	if m.Video != nil {
		diary.Video = ToDiaryVideoEntity(m.Video)
	}

	return diary
}

func ToDiaryModel(e *entity.Diary) *model.DiaryModel {
	if e == nil {
		return nil
	}

	m := &model.DiaryModel{
		ID:           e.ID,
		AuthorID:     e.AuthorID,
		Title:        e.Title,
		Content:      e.Content,
		Status:       string(e.Status),
		RejectReason: e.RejectReason,
		IsDeleted:    e.IsDeleted,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if len(e.Images) > 0 {
		m.Images = make([]model.DiaryImageModel, len(e.Images))
		for i := range e.Images {
			m.Images[i] = *ToDiaryImageModel(&e.Images[i])
		}
	}
	if e.Video != nil {
		m.Video = ToDiaryVideoModel(e.Video)
	}

	return m
}

func ToDiaryImageEntity(m *model.DiaryImageModel) *entity.DiaryImage {
	return &entity.DiaryImage{
		ID:         m.ID,
		DiaryID:    m.DiaryID,
		ImageURL:   m.ImageURL,
		ImageOrder: m.ImageOrder,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDiaryImageModel(e *entity.DiaryImage) *model.DiaryImageModel {
	return &model.DiaryImageModel{
		ID:         e.ID,
		DiaryID:    e.DiaryID,
		ImageURL:   e.ImageURL,
		ImageOrder: e.ImageOrder,
		CreatedAt:  e.CreatedAt,
	}
}

func ToDiaryVideoEntity(m *model.DiaryVideoModel) *entity.DiaryVideo {
	return &entity.DiaryVideo{
		ID:        m.ID,
		DiaryID:   m.DiaryID,
		VideoURL:  m.VideoURL,
		CoverURL:  m.CoverURL,
		CreatedAt: m.CreatedAt,
	}
}

func ToDiaryVideoModel(e *entity.DiaryVideo) *model.DiaryVideoModel {
	return &model.DiaryVideoModel{
		ID:        e.ID,
		DiaryID:   e.DiaryID,
		VideoURL:  e.VideoURL,
		CoverURL:  e.CoverURL,
		CreatedAt: e.CreatedAt,
	}
}

func ToAuditRecordEntity(m *model.AuditRecordModel) *entity.AuditRecord {
	return &entity.AuditRecord{
		ID:          m.ID,
		DiaryID:     m.DiaryID,
		ModeratorID: m.ModeratorID,
		Action:      entity.AuditAction(m.Action),
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Nickname:  m.Nickname,
		Password:  m.Password,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToModeratorEntity(m *model.ModeratorModel) *entity.Moderator {
	if m == nil {
		return nil
	}
	return &entity.Moderator{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.ModeratorRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
