package favorite

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/pkg/food"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	FavoriteService interface {
		GetUserFavorites(ctx context.Context, userID uint) ([]domain.FoodResponse, error)
		AddFavorite(ctx context.Context, userID uint, req domain.AddFavoriteRequest) (domain.FavoriteResponse, error)
		RemoveFavorite(ctx context.Context, userID, foodID uint) error
		IsFavorite(ctx context.Context, userID, foodID uint) (bool, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		foodService        food.FoodService
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, foodService food.FoodService) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		foodService:        foodService,
	}
}

// GetUserFavorites resolves favorite records against the catalog. A favorite
// whose food no longer resolves is dropped from the result rather than
// surfaced as an error.
func (s *favoriteService) GetUserFavorites(ctx context.Context, userID uint) ([]domain.FoodResponse, error) {
	favorites, err := s.favoriteRepository.GetUserFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodResponse, 0, len(favorites))
	for _, favorite := range favorites {
		food, err := s.foodService.GetFoodByID(ctx, favorite.FoodID)
		if err != nil {
			if errors.Is(err, domain.ErrFoodNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		response = append(response, food)
	}

	return response, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID uint, req domain.AddFavoriteRequest) (domain.FavoriteResponse, error) {
	favorite, err := s.favoriteRepository.AddFavorite(ctx, userID, req.FoodID)
	if err != nil {
		return domain.FavoriteResponse{}, err
	}

	return domain.FavoriteResponse{
		ID:     favorite.ID,
		UserID: favorite.UserID,
		FoodID: favorite.FoodID,
	}, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, foodID uint) error {
	removed, err := s.favoriteRepository.RemoveFavorite(ctx, userID, foodID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, foodID uint) (bool, error) {
	return s.favoriteRepository.IsFavorite(ctx, userID, foodID)
}
