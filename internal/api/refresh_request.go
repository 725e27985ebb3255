package api

// swagger:model api.RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
