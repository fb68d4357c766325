package dto

// LoginRequest is the payload for authenticating a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john.doe@student.edu"`
	Password string `json:"password" binding:"required" example:"S3cret!pass"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"` // Seconds until expiry
}
