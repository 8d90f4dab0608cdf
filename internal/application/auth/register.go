package auth

import (
	"context"
	"strings"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type RegisterUserInput struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=128"`
	FullName string `validate:"required,max=255"`
}

type RegisterUserResult struct {
	User *domain.User
}

// RegisterUser creates a user out of band. The HTTP API has no sign-up route.
type RegisterUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	if err := validate.Struct(input); err != nil {
		return nil, domerrors.Validation(err.Error())
	}
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.Conflict("email already registered")
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &RegisterUserResult{User: user}, nil
}
