package user

import (
	"context"
	"errors"
	"time"

	userRepo "attendai/database/repository/user"
	"attendai/models"
)

var (
	ErrInvalidOTP         = errors.New("invalid or expired verification code")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService interface {
	SendOTP(ctx context.Context, email string) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

// OTPStore holds pending registration codes.
type OTPStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume checks code and deletes it on success.
	Consume(ctx context.Context, email, code string) error
}

// OTPDispatcher hands a code over for delivery.
type OTPDispatcher interface {
	DispatchOTP(ctx context.Context, payload models.OTPPayload) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo       userRepo.UserRepository
	OTPs       OTPStore
	Dispatcher OTPDispatcher
	TokenTTL   time.Duration
}

func NewDefaultUserService(repo userRepo.UserRepository, otps OTPStore, dispatcher OTPDispatcher, tokenTTL time.Duration) *DefaultUserService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &DefaultUserService{Repo: repo, OTPs: otps, Dispatcher: dispatcher, TokenTTL: tokenTTL}
}
