package ports

import (
	"context"

	"github.com/vista-store/storefront/internal/core/domain"
)

// AuthClient is the contract with the auth service. Implementations return
// domain sentinel errors; human-readable messages ride on the error itself.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*domain.User, error)
}

// AuthResult carries the identity and session token returned on successful
// login or registration.
type AuthResult struct {
	User  *domain.User
	Token string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileInput is a partial profile update; empty fields are left unchanged.
type ProfileInput struct {
	Name   string
	Email  string
	Avatar string
}
