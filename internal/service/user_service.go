package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/repository"
	"github.com/a2sh3r/mindflex/internal/utils"
	"github.com/a2sh3r/mindflex/internal/validation"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
	EnsureAdmin(ctx context.Context, login, password string) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a tutor account. Accounts created here are never admins.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user := &models.User{
		Login: utils.NormalizeUsername(req.Username),
		Email: req.Email,
		Role:  models.RoleTutor,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			return nil, apperrors.Validation("dob must be a date formatted as 2006-01-02")
		}
		user.DateOfBirth = &dob
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.repo.GetUserByLogin(ctx, user.Login)
}

func (s *userService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, utils.NormalizeUsername(login))
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin seeds the admin account from configuration.
func (s *userService) EnsureAdmin(ctx context.Context, login, password string) error {
	login = utils.NormalizeUsername(login)
	if login == "" || password == "" {
		return apperrors.Validation("admin login and password are required")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	return s.repo.EnsureAdmin(ctx, login, string(hashedPassword))
}

func (s *userService) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.repo.GetUserByLogin(ctx, utils.NormalizeUsername(login))
}
