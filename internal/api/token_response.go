package api

// swagger:model api.TokenResponse
type TokenResponse struct {
	Token string `json:"token"`
}
