package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Username  string `json:"username" validate:"required" example:"alice"`
	FullName  string `json:"fullName" validate:"required" example:"Alice A"`
	Email     string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password  string `json:"password" validate:"required,min=6" example:"secret12"`
	IsBlocked Flag   `json:"isBlocked" example:"false"`
}
