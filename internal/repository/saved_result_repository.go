package repository

import (
	"context"

	"github.com/pathway-infinity/pathway-api/internal/model"
	"gorm.io/gorm"
)

type SavedResultRepository interface {
	Create(ctx context.Context, result *model.SavedResult) error
	FindByID(ctx context.Context, id string) (*model.SavedResult, error)
	FindByUserID(ctx context.Context, userID string) ([]model.SavedResult, error) // newest first
	Delete(ctx context.Context, id string) (bool, error)
}

type savedResultRepository struct {
	db *gorm.DB
}

func NewSavedResultRepository(db *gorm.DB) SavedResultRepository {
	return &savedResultRepository{db: db}
}

// Create inserts the row and loads the owner so callers can render it.
func (r *savedResultRepository) Create(ctx context.Context, result *model.SavedResult) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("User").Create(result).Error; err != nil {
		return err
	}
	return db.Preload("User").First(result, "id = ?", result.ID).Error
}

func (r *savedResultRepository) FindByID(ctx context.Context, id string) (*model.SavedResult, error) {
	var result model.SavedResult
	if err := r.db.WithContext(ctx).Preload("User").First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *savedResultRepository) FindByUserID(ctx context.Context, userID string) ([]model.SavedResult, error) {
	results := []model.SavedResult{}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("saved_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Delete reports whether a row was removed.
func (r *savedResultRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.SavedResult{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
