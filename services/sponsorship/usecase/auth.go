package usecase

import (
	"context"
	"errors"
	"fmt"
	"sponsorship/domain"
	"sponsorship/middleware"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type authUC struct {
	repo    domain.UserRepo
	TimeOut time.Duration
}

func NewAuthUseCase(repo domain.UserRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		repo:    repo,
		TimeOut: timeOut,
	}
}

// Login answers an unknown user and a wrong password with the same error.
func (au *authUC) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	user, err := au.repo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := middleware.GenerateJWT(user.UserID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (au *authUC) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := &domain.User{
		Username: req.Username,
		Password: string(hash),
		Role:     domain.Role(req.Role),
	}

	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	if err := au.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (au *authUC) ChangePassword(ctx context.Context, userID uint, req *domain.ChangePasswordRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	user, err := au.repo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return domain.NewValidationError(map[string]string{
			"old_password": "Current password is incorrect",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	return au.repo.UpdatePassword(ctx, userID, string(hash))
}
