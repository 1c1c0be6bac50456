package service

import (
	"context"
	"strings"
	"testing"

	"questing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup_Validation(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   SignupInput
		message string
	}{
		{
			name:    "all fields empty",
			input:   SignupInput{},
			message: "All fields are required!",
		},
		{
			name:    "missing password",
			input:   SignupInput{Name: "Ada", Email: "ada@example.com"},
			message: "All fields are required!",
		},
		{
			name:    "whitespace-only name",
			input:   SignupInput{Name: "   ", Email: "ada@example.com", Password: "secret"},
			message: "All fields are required!",
		},
		{
			name:    "email without at sign",
			input:   SignupInput{Name: "Ada", Email: "ada.example.com", Password: "secret"},
			message: "Invalid email format!",
		},
		{
			name:    "short password",
			input:   SignupInput{Name: "Ada", Email: "ada@example.com", Password: "12345"},
			message: "Password must be at least 6 characters!",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Signup(ctx, tc.input)
			assertValidationError(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 7, Email: email}, nil
	}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret",
	})
	assertAppError(t, err, models.CodeDuplicateEmail)
}

func TestAuthService_Signup_NormalizesAndHashes(t *testing.T) {
	t.Parallel()

	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, user *models.User) error {
		user.ID = 1
		created = user
		return nil
	}
	svc := NewAuthService(repo)

	user, err := svc.Signup(context.Background(), SignupInput{
		Name: "  Ada Lovelace  ", Email: " Ada@Example.COM ", Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "secret", created.Password, "password must never be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret")))
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "ada@example.com" {
			return &models.User{ID: 1, Email: email, Password: string(hashed)}, nil
		}
		return nil, nil
	}
	svc := NewAuthService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user, err := svc.Login(ctx, "Ada@Example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Login(ctx, "nobody@example.com", "secret")
		assertAppError(t, err, models.CodeInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Login(ctx, "ada@example.com", "wrong")
		assertAppError(t, err, models.CodeInvalidCredentials)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		_, errUnknown := svc.Login(ctx, "nobody@example.com", "secret")
		_, errWrong := svc.Login(ctx, "ada@example.com", "wrong")
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Login(ctx, "", "")
		assertValidationError(t, err)
	})
}

func TestAuthService_Signup_NameTooLong(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(noopUserRepo())
	_, err := svc.Signup(context.Background(), SignupInput{
		Name: strings.Repeat("a", 101), Email: "ada@example.com", Password: "secret",
	})
	assertValidationError(t, err)
}
