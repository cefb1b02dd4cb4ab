package favorite

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		GetUserFavorites(ctx context.Context, userID uint) ([]*entities.UserFavorite, error)
		IsFavorite(ctx context.Context, userID, foodID uint) (bool, error)
		AddFavorite(ctx context.Context, userID, foodID uint) (*entities.UserFavorite, error)
		RemoveFavorite(ctx context.Context, userID, foodID uint) (bool, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) GetUserFavorites(ctx context.Context, userID uint) ([]*entities.UserFavorite, error) {
	var favorites []*entities.UserFavorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID, foodID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.UserFavorite{}).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddFavorite inserts the (user, food) pair only if it is not already
// present. The existence check and the insert run in one transaction so two
// concurrent adds cannot both succeed.
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, foodID uint) (*entities.UserFavorite, error) {
	favorite := &entities.UserFavorite{
		UserID: userID,
		FoodID: foodID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.UserFavorite{}).
			Where("user_id = ? AND food_id = ?", userID, foodID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyFavorited
		}
		return tx.Create(favorite).Error
	})
	if err != nil {
		return nil, err
	}

	return favorite, nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, foodID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Delete(&entities.UserFavorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
