// Package service contains business logic between HTTP handlers and repositories.
package service

import (
	"context"
	"strings"

	"questing/internal/models"
	"questing/internal/repository"
	"questing/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login.
type AuthService struct {
	userRepo repository.UserRepository
}

// SignupInput carries the signup request fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup registers a new user. Passwords are stored as bcrypt hashes and
// compared with constant-time bcrypt comparison at login.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("All fields are required!")
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateSignupEmail(email); err != nil {
		return nil, models.NewValidationError("Invalid email format!")
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError("Password must be at least 6 characters!")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateEmailError()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required!")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}
