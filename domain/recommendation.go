package domain

var (
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"

	MessageFailedGetRecommendations = "failed to retrieve recommendations"
	MessageFailedInvalidPreferences = "invalid preferences"
)
