package usecase

import (
	"context"

	"patrol/internal/domain/entity"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Subject      string   `json:"subject"`
	DisplayName  string   `json:"displayName"`
	Roles        []string `json:"roles"`
}

// SessionUsecase defines the login use cases for guards and admins
type SessionUsecase interface {
	GuardLogin(ctx context.Context, guardID entity.GuardID, pin string) (*LoginResult, error)
	AdminLogin(ctx context.Context, username, password string) (*LoginResult, error)
}
