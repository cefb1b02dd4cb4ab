package entities

type UserFavorite struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"index:idx_user_food" json:"user_id"`
	FoodID uint `gorm:"index:idx_user_food" json:"food_id"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Food *Food `gorm:"foreignKey:FoodID" json:"-"`

	Timestamp
}
