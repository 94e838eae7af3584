package usecase

import (
	"mime/multipart"

	"travel-diary/internal/entity"
	"travel-diary/internal/moderation"
	"travel-diary/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) Create(diary *entity.Diary) error {
	args := m.Called(diary)
	return args.Error(0)
}

func (m *MockDiaryRepository) GetByID(id int64) (*entity.Diary, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryRepository) GetApprovedByID(id int64) (*entity.Diary, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryRepository) GetOwnedByID(id, authorID int64) (*entity.Diary, error) {
	args := m.Called(id, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryRepository) UpdateWithAttachments(diary *entity.Diary, images []entity.DiaryImage, video *entity.DiaryVideo, replaceImages, replaceVideo bool) error {
	args := m.Called(diary, images, video, replaceImages, replaceVideo)
	return args.Error(0)
}

func (m *MockDiaryRepository) SoftDelete(id, authorID int64) error {
	args := m.Called(id, authorID)
	return args.Error(0)
}

func (m *MockDiaryRepository) ApplyModeration(diaryID int64, expected entity.DiaryStatus, change moderation.Change, record *entity.AuditRecord) (*entity.Diary, error) {
	args := m.Called(diaryID, expected, change, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryRepository) ListPublic(limit, offset int, search string) ([]*entity.Diary, int64, error) {
	args := m.Called(limit, offset, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Diary), args.Get(1).(int64), args.Error(2)
}

func (m *MockDiaryRepository) ListForModeration(limit, offset int, status *entity.DiaryStatus, search string) ([]*entity.Diary, int64, error) {
	args := m.Called(limit, offset, status, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Diary), args.Get(1).(int64), args.Error(2)
}

func (m *MockDiaryRepository) ListByAuthor(authorID int64, limit, offset int) ([]*entity.Diary, int64, error) {
	args := m.Called(authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Diary), args.Get(1).(int64), args.Error(2)
}

func (m *MockDiaryRepository) CountByStatus() (map[entity.DiaryStatus]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.DiaryStatus]int64), args.Error(1)
}

var _ persistent.DiaryRepository = (*MockDiaryRepository)(nil)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) ListByDiary(diaryID int64) ([]*entity.AuditRecord, error) {
	args := m.Called(diaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AuditRecord), args.Error(1)
}

var _ persistent.AuditRepository = (*MockAuditRepository)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrNickname(username, nickname string) (bool, error) {
	args := m.Called(username, nickname)
	return args.Bool(0), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockModeratorRepository struct {
	mock.Mock
}

func (m *MockModeratorRepository) GetByID(id int64) (*entity.Moderator, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Moderator), args.Error(1)
}

func (m *MockModeratorRepository) GetByUsername(username string) (*entity.Moderator, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Moderator), args.Error(1)
}

var _ persistent.ModeratorRepository = (*MockModeratorRepository)(nil)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadFile(key string, file multipart.File, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

var _ Uploader = (*MockUploader)(nil)
