package model

import "time"

// User is a seller account. Username is the primary key; products
// reference it as their seller.
type User struct {
	Username     string     `db:"username" json:"username"`
	FullName     string     `db:"full_name" json:"fullName"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	IsAdmin      bool       `db:"is_admin" json:"isAdmin"`
	IsBlocked    bool       `db:"is_blocked" json:"isBlocked"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}
