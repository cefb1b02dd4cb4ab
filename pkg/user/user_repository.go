package user

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUserPreferences(ctx context.Context, userID uint, prefs *domain.UserPreferences) (bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUserPreferences(ctx context.Context, userID uint, prefs *domain.UserPreferences) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		Update("preferences", prefs)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
