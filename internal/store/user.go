package store

import (
	"context"
	"fmt"

	"github.com/askarthikey/sellerPro/internal/database"
	"github.com/askarthikey/sellerPro/internal/model"
)

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT username, full_name, email, password_hash, is_admin, is_blocked, created_at, last_login_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.Username,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.IsBlocked,
		&u.CreatedAt,
		&u.LastLoginAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, full_name, email, password_hash, is_admin, is_blocked)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		u.Username,
		u.FullName,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
		u.IsBlocked,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT username, full_name, email, password_hash, is_admin, is_blocked, created_at, last_login_at
		 FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.Username,
			&u.FullName,
			&u.Email,
			&u.PasswordHash,
			&u.IsAdmin,
			&u.IsBlocked,
			&u.CreatedAt,
			&u.LastLoginAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func SetUserBlocked(ctx context.Context, db database.DB, username string, blocked bool) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET is_blocked = $1 WHERE username = $2`,
		blocked,
		username,
	)
	if err != nil {
		return fmt.Errorf("SetUserBlocked: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetUserBlocked: no such user %q", username)
	}
	return nil
}

func TouchUserLastLogin(ctx context.Context, db database.DB, username string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = now() WHERE username = $1`,
		username,
	)
	if err != nil {
		return fmt.Errorf("TouchUserLastLogin: %w", err)
	}
	return nil
}
