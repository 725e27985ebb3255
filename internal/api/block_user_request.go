package api

// swagger:model api.BlockUserRequest
type BlockUserRequest struct {
	Blocked *Flag `json:"blocked" validate:"required" example:"true"`
}
