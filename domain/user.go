package domain

import (
	"errors"
)

var (
	MessageSuccessGetUser         = "user retrieved successfully"
	MessageSuccessSavePreferences = "preferences saved successfully"

	MessageFailedGetUser         = "failed to retrieve user"
	MessageFailedSavePreferences = "failed to save preferences"

	ErrUserNotFound = errors.New("user not found")
)

type UserResponse struct {
	ID          uint             `json:"id"`
	Username    string           `json:"username"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}
