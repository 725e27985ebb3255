package api

import (
	"time"

	"github.com/askarthikey/sellerPro/internal/model"
)

// UserResponse carries account data back to the client. The password
// hash never leaves the server.
// swagger:model api.UserResponse
type UserResponse struct {
	Username    string     `json:"username" example:"alice"`
	FullName    string     `json:"fullName" example:"Alice A"`
	Email       string     `json:"email" example:"alice@example.com"`
	IsAdmin     bool       `json:"isAdmin" example:"false"`
	IsBlocked   bool       `json:"isBlocked" example:"false"`
	CreatedAt   time.Time  `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		Username:    u.Username,
		FullName:    u.FullName,
		Email:       u.Email,
		IsAdmin:     u.IsAdmin,
		IsBlocked:   u.IsBlocked,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
