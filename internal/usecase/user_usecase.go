// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"smartchef/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for account and profile operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*AuthOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create a new account.
type RegisterInput struct {
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required,email"`
	Password    string            `json:"password" validate:"required,min=8"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// LoginInput defines the credentials for authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines a partial profile update. Nil fields are left
// untouched; Preferences merge shallowly into the stored map.
type UpdateProfileInput struct {
	Name        *string           `json:"name,omitempty"`
	Email       *string           `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string           `json:"password,omitempty" validate:"omitempty,min=8"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// --- Output DTOs ---

// AuthOutput carries an authenticated user together with a fresh access token.
type AuthOutput struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}
