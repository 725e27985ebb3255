package api

// swagger:model api.SigninResponse
type SigninResponse struct {
	Message      string       `json:"message" example:"Login Successful!!"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}
