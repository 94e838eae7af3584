package persistent

import (
	"errors"

	"travel-diary/internal/entity"
	"travel-diary/internal/model"

	"gorm.io/gorm"
)

type ModeratorRepository interface {
	GetByID(id int64) (*entity.Moderator, error)
	GetByUsername(username string) (*entity.Moderator, error)
}

type moderatorRepository struct {
	db *gorm.DB
}

func NewModeratorRepository(db *gorm.DB) ModeratorRepository {
	return &moderatorRepository{db: db}
}

func (r *moderatorRepository) GetByID(id int64) (*entity.Moderator, error) {
	var moderatorModel model.ModeratorModel
	if err := r.db.Where("id = ?", id).First(&moderatorModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToModeratorEntity(&moderatorModel), nil
}

func (r *moderatorRepository) GetByUsername(username string) (*entity.Moderator, error) {
	var moderatorModel model.ModeratorModel
	if err := r.db.Where("username = ?", username).First(&moderatorModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToModeratorEntity(&moderatorModel), nil
}
