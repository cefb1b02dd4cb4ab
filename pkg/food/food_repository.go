package food

import (
	"TasteBud-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		GetAllFoods(ctx context.Context) ([]*entities.Food, error)
		GetFoodByID(ctx context.Context, id uint) (*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetAllFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("id asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
