package api

// swagger:model api.SigninRequest
type SigninRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret12"`
}
