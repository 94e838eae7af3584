package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"testing"

	"travel-diary/internal/entity"
	"travel-diary/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiaryUC(diaryRepo *MockDiaryRepository, uploader *MockUploader) DiaryUseCase {
	return NewDiaryUseCase(diaryRepo, uploader, nil, logger.New())
}

// fileHeaders builds real multipart file headers the way gin hands them to
// handlers.
func fileHeaders(t *testing.T, field string, names ...string) []*multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range names {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake file bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File[field]
}

func TestCreate_RequiresImages(t *testing.T) {
	uc := newDiaryUC(new(MockDiaryRepository), new(MockUploader))

	_, err := uc.Create(1, "Kyoto", "temples and tea", nil, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestCreate_RequiresTitleAndContent(t *testing.T) {
	uc := newDiaryUC(new(MockDiaryRepository), new(MockUploader))
	images := fileHeaders(t, "images", "a.jpg")

	_, err := uc.Create(1, "   ", "content", images, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrValidation))

	_, err = uc.Create(1, "title", "", images, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestCreate_OrdersImagesBySubmissionPosition(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uploader := new(MockUploader)
	uc := newDiaryUC(diaryRepo, uploader)

	uploader.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/img", nil)
	diaryRepo.On("Create", mock.MatchedBy(func(d *entity.Diary) bool {
		if d.Status != entity.StatusPending || len(d.Images) != 3 {
			return false
		}
		for i, img := range d.Images {
			if img.ImageOrder != i {
				return false
			}
		}
		return d.RejectReason == nil
	})).Return(nil)

	images := fileHeaders(t, "images", "a.jpg", "b.jpg", "c.jpg")
	diary, err := uc.Create(1, "Kyoto", "temples and tea", images, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, diary.Status)
	diaryRepo.AssertExpectations(t)
	uploader.AssertNumberOfCalls(t, "UploadFile", 3)
}

func TestCreate_TooManyImages(t *testing.T) {
	uc := newDiaryUC(new(MockDiaryRepository), new(MockUploader))

	names := make([]string, 10)
	for i := range names {
		names[i] = "img.jpg"
	}
	images := fileHeaders(t, "images", names...)

	_, err := uc.Create(1, "Kyoto", "temples", images, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestUpdate_OnlyPendingOrRejected(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	approved := &entity.Diary{ID: 1, AuthorID: 1, Status: entity.StatusApproved}
	diaryRepo.On("GetOwnedByID", int64(1), int64(1)).Return(approved, nil)

	title := "new title"
	_, err := uc.Update(1, 1, &title, nil, nil, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrInvalidState))
	diaryRepo.AssertNotCalled(t, "UpdateWithAttachments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_RejectedResetsToPending(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uploader := new(MockUploader)
	uc := newDiaryUC(diaryRepo, uploader)

	reason := "bad photos"
	rejected := &entity.Diary{ID: 2, AuthorID: 1, Title: "old", Content: "old", Status: entity.StatusRejected, RejectReason: &reason}
	diaryRepo.On("GetOwnedByID", int64(2), int64(1)).Return(rejected, nil)

	uploader.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/new.jpg", nil)

	diaryRepo.On("UpdateWithAttachments", mock.MatchedBy(func(d *entity.Diary) bool {
		return d.Status == entity.StatusPending && d.RejectReason == nil
	}), mock.MatchedBy(func(images []entity.DiaryImage) bool {
		return len(images) == 1 && images[0].ImageOrder == 0
	}), (*entity.DiaryVideo)(nil), true, false).Return(nil)

	// The old two-image set is replaced by the single new image.
	images := fileHeaders(t, "images", "replacement.jpg")
	_, err := uc.Update(1, 2, nil, nil, images, nil, nil)
	assert.NoError(t, err)
	diaryRepo.AssertExpectations(t)
}

func TestUpdate_NoAttachmentsLeftUntouched(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	pending := &entity.Diary{ID: 3, AuthorID: 1, Title: "old", Content: "old", Status: entity.StatusPending}
	diaryRepo.On("GetOwnedByID", int64(3), int64(1)).Return(pending, nil)
	diaryRepo.On("UpdateWithAttachments", mock.Anything, mock.Anything, mock.Anything, false, false).Return(nil)

	title := "new title"
	_, err := uc.Update(1, 3, &title, nil, nil, nil, nil)
	assert.NoError(t, err)
	diaryRepo.AssertExpectations(t)
}

func TestUpdate_ConcurrentApprovalConflicts(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	pending := &entity.Diary{ID: 4, AuthorID: 1, Title: "old", Content: "old", Status: entity.StatusPending}
	diaryRepo.On("GetOwnedByID", int64(4), int64(1)).Return(pending, nil)

	// The diary was approved between the read and the write; the repository
	// re-checks under lock and refuses the edit.
	diaryRepo.On("UpdateWithAttachments", mock.Anything, mock.Anything, mock.Anything, false, false).
		Return(fmt.Errorf("%w: diary 4 is now approved", entity.ErrConflict))

	title := "new title"
	_, err := uc.Update(1, 4, &title, nil, nil, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrConflict))
}

func TestUpdate_NotOwnedLooksMissing(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	diaryRepo.On("GetOwnedByID", int64(9), int64(1)).Return(nil, entity.ErrNotFound)

	title := "x"
	_, err := uc.Update(1, 9, &title, nil, nil, nil, nil)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestDelete(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	diaryRepo.On("SoftDelete", int64(4), int64(1)).Return(nil)
	assert.NoError(t, uc.Delete(1, 4))

	diaryRepo.On("SoftDelete", int64(5), int64(1)).Return(entity.ErrNotFound)
	assert.True(t, errors.Is(uc.Delete(1, 5), entity.ErrNotFound))
}

func TestGetPublic_NotApprovedIsMissing(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	diaryRepo.On("GetApprovedByID", int64(6)).Return(nil, entity.ErrNotFound)

	_, err := uc.GetPublic(6)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestListPublic_Pagination(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uc := newDiaryUC(diaryRepo, new(MockUploader))

	diaryRepo.On("ListPublic", 10, 10, "").Return([]*entity.Diary{}, int64(12), nil)

	_, total, err := uc.ListPublic(2, 10, "")
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	diaryRepo.AssertExpectations(t)
}

func TestPaginate(t *testing.T) {
	limit, offset := paginate(1, 10)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	limit, offset = paginate(3, 5)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)

	// Defaults
	limit, offset = paginate(0, 0)
	assert.Equal(t, defaultPageSize, limit)
	assert.Equal(t, 0, offset)
}

func TestCreate_UploadFailurePropagates(t *testing.T) {
	diaryRepo := new(MockDiaryRepository)
	uploader := new(MockUploader)
	uc := newDiaryUC(diaryRepo, uploader)

	uploader.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).
		Return("", io.ErrUnexpectedEOF)

	images := fileHeaders(t, "images", "a.jpg")
	_, err := uc.Create(1, "Kyoto", "temples", images, nil, nil)
	assert.Error(t, err)
	diaryRepo.AssertNotCalled(t, "Create", mock.Anything)
}
