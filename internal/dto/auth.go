package dto

import "github.com/BruksfildServices01/flatmate-finder/internal/models"

// AuthResponse keeps token and user at the top level of the body; browser
// clients read response.token directly.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

type UploadResult struct {
	URL string `json:"url"`
}
