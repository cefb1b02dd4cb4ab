package migration

import (
	"TasteBud-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Seed loads the canonical catalog once. Food ids are assigned in insertion
// order and never change afterwards; rerunning against a seeded database is a
// no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Food{}).Count(&count).Error; err != nil {
		log.Printf("Error counting foods before seeding: %v", err)
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(seedFoods()).Error; err != nil {
		log.Printf("Error seeding foods: %v", err)
		return err
	}

	fmt.Println("Database seeding complete")
	return nil
}

func seedFoods() []*entities.Food {
	return []*entities.Food{
		{
			Name:         "Grilled Salmon with Herbs",
			Description:  "Fresh Atlantic salmon grilled to perfection with Mediterranean herbs and served with roasted vegetables.",
			Cuisine:      "Mediterranean",
			ImageURL:     "https://images.unsplash.com/photo-1467003909585-2f8a72700288?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       48,
			CookTime:     25,
			SpiceLevel:   2,
			IsGlutenFree: true,
			IsKeto:       true,
			IsLowCarb:    true,
			Flavors:      []string{"savory"},
			Ingredients:  []string{"salmon", "herbs", "vegetables"},
		},
		{
			Name:         "Thai Green Curry",
			Description:  "Aromatic green curry with coconut milk, fresh vegetables, and fragrant Thai basil served over jasmine rice.",
			Cuisine:      "Thai",
			ImageURL:     "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       46,
			CookTime:     30,
			SpiceLevel:   4,
			IsVegetarian: true,
			IsVegan:      true,
			IsGlutenFree: true,
			Flavors:      []string{"spicy", "savory"},
			Ingredients:  []string{"coconut milk", "vegetables", "thai basil", "rice"},
		},
		{
			Name:         "Pasta Pomodoro",
			Description:  "Classic Italian pasta with fresh tomatoes, basil, garlic, and extra virgin olive oil. Simple yet perfectly executed.",
			Cuisine:      "Italian",
			ImageURL:     "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       49,
			CookTime:     20,
			SpiceLevel:   1,
			IsVegetarian: true,
			Flavors:      []string{"savory"},
			Ingredients:  []string{"pasta", "tomatoes", "basil", "garlic", "olive oil"},
		},
		{
			Name:         "Chicken Tikka Masala",
			Description:  "Tender chicken in a rich, creamy tomato-based sauce with aromatic Indian spices.",
			Cuisine:      "Indian",
			ImageURL:     "https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       47,
			CookTime:     35,
			SpiceLevel:   3,
			IsGlutenFree: true,
			Flavors:      []string{"spicy", "savory"},
			Ingredients:  []string{"chicken", "tomatoes", "cream", "spices"},
		},
		{
			Name:         "California Roll",
			Description:  "Fresh sushi roll with imitation crab, avocado, and cucumber, topped with sesame seeds.",
			Cuisine:      "Japanese",
			ImageURL:     "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       45,
			CookTime:     15,
			SpiceLevel:   1,
			IsGlutenFree: true,
			IsKeto:       true,
			IsLowCarb:    true,
			Flavors:      []string{"savory"},
			Ingredients:  []string{"crab", "avocado", "cucumber", "rice", "nori"},
		},
		{
			Name:        "Beef Tacos",
			Description: "Seasoned ground beef in soft tortillas with fresh lettuce, tomatoes, cheese, and sour cream.",
			Cuisine:     "Mexican",
			ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:      44,
			CookTime:    20,
			SpiceLevel:  3,
			Flavors:     []string{"spicy", "savory"},
			Ingredients: []string{"beef", "tortillas", "lettuce", "tomatoes", "cheese"},
		},
		{
			Name:         "Chocolate Lava Cake",
			Description:  "Decadent chocolate cake with a molten chocolate center, served with vanilla ice cream.",
			Cuisine:      "French",
			ImageURL:     "https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       49,
			CookTime:     25,
			SpiceLevel:   1,
			IsVegetarian: true,
			Flavors:      []string{"sweet"},
			Ingredients:  []string{"chocolate", "flour", "eggs", "butter", "sugar"},
		},
		{
			Name:         "Avocado Toast",
			Description:  "Fresh avocado mashed on toasted sourdough bread with lime, salt, and chili flakes.",
			Cuisine:      "American",
			ImageURL:     "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Rating:       42,
			CookTime:     10,
			SpiceLevel:   1,
			IsVegetarian: true,
			IsVegan:      true,
			Flavors:      []string{"savory"},
			Ingredients:  []string{"avocado", "bread", "lime", "salt", "chili flakes"},
		},
	}
}
