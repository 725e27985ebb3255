package auth

import (
	"time"

	"github.com/askarthikey/sellerPro/internal/service"
	"github.com/askarthikey/sellerPro/internal/store"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	hashPassword         = service.HashPassword
	authenticateUser     = service.AuthenticateUser
	issueAccessToken     = service.IssueAccessToken
	issueRefreshToken    = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
	revokeRefreshToken   = service.RevokeRefreshToken
	getUserByUsername    = store.GetUserByUsername
	createUser           = store.CreateUser
	touchUserLastLogin   = store.TouchUserLastLogin
)
