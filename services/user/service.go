package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "attendai/database/repository/user"
	"attendai/models"
	"attendai/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SendOTP issues a fresh six digit code for email and queues its delivery.
func (s *DefaultUserService) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	code, err := utils.GenerateNumericOTP(6)
	if err != nil {
		return err
	}
	if err := s.OTPs.Save(ctx, email, code, utils.OTPTTL); err != nil {
		utils.GetLogger().Error("SendOTP: failed to store code", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("failed to send verification code")
	}
	if err := s.Dispatcher.DispatchOTP(ctx, models.OTPPayload{Email: email, Code: code}); err != nil {
		utils.GetLogger().Error("SendOTP: failed to dispatch code", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("failed to send verification code")
	}
	return nil
}

// Register verifies the emailed code and creates the account.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := s.OTPs.Consume(ctx, email, strings.TrimSpace(req.OTP)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	utils.GetLogger().Info("User registered", zap.String("userID", u.ID))
	return s.issueToken(ctx, u)
}

// Login checks the password and issues a new token.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, u)
}

// issueToken signs a JWT and stores its hash, replacing any earlier session.
func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, u.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return &models.AuthResponse{Token: token, User: u.Public()}, nil
}
