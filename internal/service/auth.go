package service

import (
	"context"
	"errors"
	"net/mail"

	"github.com/taskboard/taskboard-go/internal/crypto"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService handles registration and login.
type AuthService struct {
	repo   *repository.UserRepository
	tokens *crypto.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, tokens *crypto.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register validates the request, hashes the password, and creates the user.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	fields := map[string][]string{}
	if req.DisplayName() == "" {
		addFieldError(fields, "name", "name is required")
	}
	if !validEmail(req.Email) {
		addFieldError(fields, "email", "invalid email")
	}
	if len(req.Password) < 6 {
		addFieldError(fields, "password", "password must be at least 6 characters")
	}
	if err := newValidationError(fields); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Name:     req.DisplayName(),
		Email:    req.Email,
		Password: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	createdAt := user.CreatedAt
	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: &createdAt,
	}, nil
}

// Login authenticates a user and returns a signed token. Unknown emails and
// wrong passwords produce the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	fields := map[string][]string{}
	if !validEmail(req.Email) {
		addFieldError(fields, "email", "invalid email")
	}
	if len(req.Password) < 6 {
		addFieldError(fields, "password", "password must be at least 6 characters")
	}
	if err := newValidationError(fields); err != nil {
		return model.LoginResponse{}, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token: token,
		User: model.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
