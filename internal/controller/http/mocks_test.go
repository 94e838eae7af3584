package http

import (
	"mime/multipart"

	"travel-diary/internal/entity"
	"travel-diary/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockDiaryUseCase struct {
	mock.Mock
}

func (m *MockDiaryUseCase) Create(authorID int64, title, content string, imageFiles []*multipart.FileHeader, videoFile, coverFile *multipart.FileHeader) (*entity.Diary, error) {
	args := m.Called(authorID, title, content, imageFiles, videoFile, coverFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryUseCase) Update(authorID, diaryID int64, title, content *string, imageFiles []*multipart.FileHeader, videoFile, coverFile *multipart.FileHeader) (*entity.Diary, error) {
	args := m.Called(authorID, diaryID, title, content, imageFiles, videoFile, coverFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryUseCase) Delete(authorID, diaryID int64) error {
	args := m.Called(authorID, diaryID)
	return args.Error(0)
}

func (m *MockDiaryUseCase) GetPublic(diaryID int64) (*entity.Diary, error) {
	args := m.Called(diaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockDiaryUseCase) ListPublic(page, size int, search string) ([]*entity.Diary, int64, error) {
	args := m.Called(page, size, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Diary), args.Get(1).(int64), args.Error(2)
}

func (m *MockDiaryUseCase) ListByAuthor(authorID int64, page, size int) ([]*entity.Diary, int64, error) {
	args := m.Called(authorID, page, size)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Diary), args.Get(1).(int64), args.Error(2)
}

var _ usecase.DiaryUseCase = (*MockDiaryUseCase)(nil)

type MockModerationUseCase struct {
	mock.Mock
}

func (m *MockModerationUseCase) Review(moderatorID int64, role entity.ModeratorRole, diaryID int64, action entity.AuditAction, reason string) (*entity.Diary, error) {
	args := m.Called(moderatorID, role, diaryID, action, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Diary), args.Error(1)
}

func (m *MockModerationUseCase) List(page, size int, status *entity.DiaryStatus, search string) ([]*entity.Diary, int64, error) {
	args := m.Called(page, size, status, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Diary), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationUseCase) Detail(diaryID int64) (*entity.Diary, []*entity.AuditRecord, error) {
	args := m.Called(diaryID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Diary), args.Get(1).([]*entity.AuditRecord), args.Error(2)
}

func (m *MockModerationUseCase) Stats() (map[entity.DiaryStatus]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.DiaryStatus]int64), args.Error(1)
}

var _ usecase.ModerationUseCase = (*MockModerationUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) RegisterUser(username, password, nickname, avatarURL string) (*entity.User, error) {
	args := m.Called(username, password, nickname, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) LoginUser(username, password string) (*entity.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUserProfile(userID int64) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) LoginModerator(username, password string) (*entity.Moderator, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Moderator), args.String(1), args.Error(2)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

func asModerator(moderatorID, role string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("moderator_id", moderatorID)
		c.Set("role", role)
		handler(c)
	}
}
