package recommendation

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"context"
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

// catalogFixture mirrors the seeded catalog: ids follow insertion order.
func catalogFixture() []*entities.Food {
	return []*entities.Food{
		{ID: 1, Name: "Grilled Salmon with Herbs", Cuisine: "Mediterranean", Rating: 48, SpiceLevel: 2, IsGlutenFree: true, IsKeto: true, IsLowCarb: true, Flavors: []string{"savory"}, Ingredients: []string{"salmon", "herbs", "vegetables"}},
		{ID: 2, Name: "Thai Green Curry", Cuisine: "Thai", Rating: 46, SpiceLevel: 4, IsVegetarian: true, IsVegan: true, IsGlutenFree: true, Flavors: []string{"spicy", "savory"}, Ingredients: []string{"coconut milk", "vegetables", "thai basil", "rice"}},
		{ID: 3, Name: "Pasta Pomodoro", Cuisine: "Italian", Rating: 49, SpiceLevel: 1, IsVegetarian: true, Flavors: []string{"savory"}, Ingredients: []string{"pasta", "tomatoes", "basil", "garlic", "olive oil"}},
		{ID: 4, Name: "Chicken Tikka Masala", Cuisine: "Indian", Rating: 47, SpiceLevel: 3, IsGlutenFree: true, Flavors: []string{"spicy", "savory"}, Ingredients: []string{"chicken", "tomatoes", "cream", "spices"}},
		{ID: 5, Name: "California Roll", Cuisine: "Japanese", Rating: 45, SpiceLevel: 1, IsGlutenFree: true, IsKeto: true, IsLowCarb: true, Flavors: []string{"savory"}, Ingredients: []string{"crab", "avocado", "cucumber", "rice", "nori"}},
		{ID: 6, Name: "Beef Tacos", Cuisine: "Mexican", Rating: 44, SpiceLevel: 3, Flavors: []string{"spicy", "savory"}, Ingredients: []string{"beef", "tortillas", "lettuce", "tomatoes", "cheese"}},
		{ID: 7, Name: "Chocolate Lava Cake", Cuisine: "French", Rating: 49, SpiceLevel: 1, IsVegetarian: true, Flavors: []string{"sweet"}, Ingredients: []string{"chocolate", "flour", "eggs", "butter", "sugar"}},
		{ID: 8, Name: "Avocado Toast", Cuisine: "American", Rating: 42, SpiceLevel: 1, IsVegetarian: true, IsVegan: true, Flavors: []string{"savory"}, Ingredients: []string{"avocado", "bread", "lime", "salt", "chili flakes"}},
	}
}

func spiceLevel(v int) *int {
	return &v
}

func defaultPreferences() domain.UserPreferences {
	prefs := domain.UserPreferences{}
	prefs.ApplyDefaults()
	return prefs
}

func resultIDs(foods []domain.FoodResponse) []uint {
	ids := make([]uint, 0, len(foods))
	for _, f := range foods {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestGetRecommendations_Filtering(t *testing.T) {
	service := NewRecommendationService(&stubFoodRepository{foods: catalogFixture()})

	tests := []struct {
		name    string
		prefs   domain.UserPreferences
		wantIDs []uint
	}{
		{
			// Default preferences admit exactly the spice window {2,3,4},
			// rating-sorted.
			name:    "default preferences",
			prefs:   defaultPreferences(),
			wantIDs: []uint{1, 4, 2, 6},
		},
		{
			name:    "vegan at spice level one",
			prefs:   domain.UserPreferences{Dietary: []string{"vegan"}, SpiceLevel: spiceLevel(1)},
			wantIDs: []uint{8},
		},
		{
			name:    "all dietary restrictions are conjunctive",
			prefs:   domain.UserPreferences{Dietary: []string{"vegetarian", "glutenFree"}, SpiceLevel: spiceLevel(3)},
			wantIDs: []uint{2},
		},
		{
			name:    "cuisine membership is case sensitive",
			prefs:   domain.UserPreferences{Cuisines: []string{"italian"}, SpiceLevel: spiceLevel(1)},
			wantIDs: []uint{},
		},
		{
			name:    "cuisine exact match",
			prefs:   domain.UserPreferences{Cuisines: []string{"Italian"}, SpiceLevel: spiceLevel(1)},
			wantIDs: []uint{3},
		},
		{
			name:    "flavor intersection",
			prefs:   domain.UserPreferences{Flavors: []string{"sweet"}, SpiceLevel: spiceLevel(1)},
			wantIDs: []uint{7},
		},
		{
			// Pasta Pomodoro and Chocolate Lava Cake tie at 49; catalog order
			// breaks the tie.
			name:    "rating ties keep catalog order",
			prefs:   domain.UserPreferences{SpiceLevel: spiceLevel(1)},
			wantIDs: []uint{3, 7, 1, 5, 8},
		},
		{
			name:    "no dish survives disjoint constraints",
			prefs:   domain.UserPreferences{Dietary: []string{"keto"}, Flavors: []string{"sweet"}, SpiceLevel: spiceLevel(3)},
			wantIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.GetRecommendations(context.Background(), tt.prefs)
			if err != nil {
				t.Fatalf("GetRecommendations() error = %v", err)
			}
			if gotIDs := resultIDs(got); !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("GetRecommendations() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestGetRecommendations_SortedByRatingDescending(t *testing.T) {
	service := NewRecommendationService(&stubFoodRepository{foods: catalogFixture()})

	got, err := service.GetRecommendations(context.Background(), defaultPreferences())
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("GetRecommendations() returned no results")
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Errorf("result not sorted: rating %d before %d", got[i-1].Rating, got[i].Rating)
		}
	}
}

func TestGetRecommendations_Idempotent(t *testing.T) {
	service := NewRecommendationService(&stubFoodRepository{foods: catalogFixture()})
	prefs := domain.UserPreferences{Dietary: []string{"glutenFree"}, SpiceLevel: spiceLevel(2)}

	first, err := service.GetRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	second, err := service.GetRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("GetRecommendations() not idempotent: %v != %v", resultIDs(first), resultIDs(second))
	}
}

func TestMatchesPreferences_SurvivorsSatisfyEveryPredicate(t *testing.T) {
	catalog := catalogFixture()
	service := NewRecommendationService(&stubFoodRepository{foods: catalog})
	prefs := domain.UserPreferences{Dietary: []string{"vegetarian"}, SpiceLevel: spiceLevel(2), Flavors: []string{"savory", "sweet"}}

	got, err := service.GetRecommendations(context.Background(), prefs)
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	included := make(map[uint]bool, len(got))
	for _, f := range got {
		included[f.ID] = true
	}

	for _, f := range catalog {
		if matchesPreferences(f, prefs) != included[f.ID] {
			t.Errorf("food %d: matchesPreferences = %v but included = %v", f.ID, matchesPreferences(f, prefs), included[f.ID])
		}
	}
}

func TestMatchesPreferences_SpiceWindow(t *testing.T) {
	food := &entities.Food{SpiceLevel: 3, Flavors: []string{"savory"}}

	for pref := 1; pref <= 5; pref++ {
		want := pref >= 2 && pref <= 4
		got := matchesPreferences(food, domain.UserPreferences{SpiceLevel: spiceLevel(pref)})
		if got != want {
			t.Errorf("spice preference %d against level 3: got %v, want %v", pref, got, want)
		}
	}
}
