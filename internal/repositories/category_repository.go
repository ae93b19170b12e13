package repositories

import (
	"context"

	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]db_models.Category, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

type categoryRepository struct {
	db *gorm.DB
}

func (c *categoryRepository) GetAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := c.db.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
