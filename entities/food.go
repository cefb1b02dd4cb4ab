package entities

type Food struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Cuisine      string   `json:"cuisine"`
	ImageURL     string   `json:"image_url,omitempty"`
	Rating       int      `json:"rating"` // 0-50, a 0.0-5.0 star score scaled by 10
	CookTime     int      `json:"cook_time"`
	SpiceLevel   int      `json:"spice_level"` // 1-5
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	IsKeto       bool     `json:"is_keto"`
	IsLowCarb    bool     `json:"is_low_carb"`
	Flavors      []string `gorm:"serializer:json" json:"flavors"`
	Ingredients  []string `gorm:"serializer:json" json:"ingredients"`

	Timestamp
}
