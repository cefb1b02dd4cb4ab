package user

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	UserService interface {
		GetOrCreateDemoUser(ctx context.Context) (domain.UserResponse, error)
		SavePreferences(ctx context.Context, userID uint, prefs domain.UserPreferences) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		demoUsername   string
	}
)

func NewUserService(userRepository UserRepository, demoUsername string) UserService {
	return &userService{
		userRepository: userRepository,
		demoUsername:   demoUsername,
	}
}

// GetOrCreateDemoUser returns the configured demo identity, creating it on
// first access. The caller threads the returned id through favorite and
// preference calls; nothing below the handlers knows about the demo user.
func (s *userService) GetOrCreateDemoUser(ctx context.Context) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, s.demoUsername)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user = &entities.User{Username: s.demoUsername}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.UserResponse{}, err
		}
	}

	return toUserResponse(user), nil
}

func (s *userService) SavePreferences(ctx context.Context, userID uint, prefs domain.UserPreferences) (domain.UserResponse, error) {
	updated, err := s.userRepository.UpdateUserPreferences(ctx, userID, &prefs)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if !updated {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Preferences: user.Preferences,
	}
}
