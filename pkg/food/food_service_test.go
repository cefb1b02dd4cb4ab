package food

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"context"
	"errors"
	"reflect"
	"testing"

	"gorm.io/gorm"
)

type stubFoodRepository struct {
	foods []*entities.Food
}

func (s *stubFoodRepository) GetAllFoods(ctx context.Context) ([]*entities.Food, error) {
	return s.foods, nil
}

func (s *stubFoodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	for _, f := range s.foods {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func testCatalog() []*entities.Food {
	return []*entities.Food{
		{ID: 1, Name: "Pasta Pomodoro", Description: "Classic Italian pasta with fresh tomatoes.", Cuisine: "Italian", Ingredients: []string{"pasta", "tomatoes", "basil"}},
		{ID: 2, Name: "California Roll", Description: "Fresh sushi roll topped with sesame seeds.", Cuisine: "Japanese", Ingredients: []string{"crab", "avocado", "cucumber"}},
		{ID: 3, Name: "Avocado Toast", Description: "Fresh avocado mashed on toasted sourdough bread.", Cuisine: "American", Ingredients: []string{"avocado", "bread", "lime"}},
	}
}

func resultIDs(foods []domain.FoodResponse) []uint {
	ids := make([]uint, 0, len(foods))
	for _, f := range foods {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestSearchFoods(t *testing.T) {
	service := NewFoodService(&stubFoodRepository{foods: testCatalog()})

	tests := []struct {
		name    string
		query   string
		wantIDs []uint
	}{
		{
			// The roll matches on ingredient only; the query never appears in
			// its name or description.
			name:    "ingredient match",
			query:   "avocado",
			wantIDs: []uint{2, 3},
		},
		{
			name:    "name match is case insensitive",
			query:   "PASTA",
			wantIDs: []uint{1},
		},
		{
			name:    "description match",
			query:   "sourdough",
			wantIDs: []uint{3},
		},
		{
			name:    "cuisine match",
			query:   "japanese",
			wantIDs: []uint{2},
		},
		{
			name:    "empty query returns nothing",
			query:   "",
			wantIDs: []uint{},
		},
		{
			name:    "whitespace query returns nothing",
			query:   "   ",
			wantIDs: []uint{},
		},
		{
			name:    "no match",
			query:   "zucchini",
			wantIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.SearchFoods(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("SearchFoods() error = %v", err)
			}
			if gotIDs := resultIDs(got); !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("SearchFoods(%q) ids = %v, want %v", tt.query, gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestGetFoodsByCuisine_CaseInsensitive(t *testing.T) {
	service := NewFoodService(&stubFoodRepository{foods: testCatalog()})

	lower, err := service.GetFoodsByCuisine(context.Background(), "italian")
	if err != nil {
		t.Fatalf("GetFoodsByCuisine() error = %v", err)
	}
	upper, err := service.GetFoodsByCuisine(context.Background(), "Italian")
	if err != nil {
		t.Fatalf("GetFoodsByCuisine() error = %v", err)
	}

	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("GetFoodsByCuisine() results differ by case: %v vs %v", resultIDs(lower), resultIDs(upper))
	}
	if got := resultIDs(lower); !reflect.DeepEqual(got, []uint{1}) {
		t.Errorf("GetFoodsByCuisine() ids = %v, want [1]", got)
	}
}

func TestGetFoodsByCuisine_SubstringDoesNotMatch(t *testing.T) {
	service := NewFoodService(&stubFoodRepository{foods: testCatalog()})

	got, err := service.GetFoodsByCuisine(context.Background(), "Ital")
	if err != nil {
		t.Fatalf("GetFoodsByCuisine() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetFoodsByCuisine(\"Ital\") = %v, want empty", resultIDs(got))
	}
}

func TestGetFoodByID(t *testing.T) {
	service := NewFoodService(&stubFoodRepository{foods: testCatalog()})

	got, err := service.GetFoodByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetFoodByID(2) error = %v", err)
	}
	if got.Name != "California Roll" {
		t.Errorf("GetFoodByID(2) name = %q, want %q", got.Name, "California Roll")
	}

	_, err = service.GetFoodByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Errorf("GetFoodByID(99) error = %v, want ErrFoodNotFound", err)
	}
}

func TestGetFoods_KeepsCatalogOrder(t *testing.T) {
	service := NewFoodService(&stubFoodRepository{foods: testCatalog()})

	got, err := service.GetFoods(context.Background())
	if err != nil {
		t.Fatalf("GetFoods() error = %v", err)
	}
	if gotIDs := resultIDs(got); !reflect.DeepEqual(gotIDs, []uint{1, 2, 3}) {
		t.Errorf("GetFoods() ids = %v, want [1 2 3]", gotIDs)
	}
}
