package entities

import (
	"TasteBud-Backend/domain"
)

type User struct {
	ID          uint                    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string                  `gorm:"uniqueIndex" json:"username"`
	Preferences *domain.UserPreferences `gorm:"serializer:json" json:"preferences,omitempty"`

	Timestamp
}
