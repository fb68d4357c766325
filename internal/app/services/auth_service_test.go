package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.test",
	})
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		stored := &models.User{
			ID:       42,
			Email:    "john@student.edu",
			Password: hashFor(t, "S3cret!pass"),
		}
		userRepo.On("GetByEmail", mock.Anything, "john@student.edu").Return(stored, nil)
		roleRepo.On("GetRolesByUserID", mock.Anything, int64(42)).Return([]models.Role{{ID: 2, Name: "ROLE_USER"}}, nil)

		jwtService := testJWTService()
		svc := NewAuthService(userRepo, roleRepo, nil, jwtService)

		token, err := svc.Login(context.Background(), "john@student.edu", "S3cret!pass")

		assert.NoError(t, err)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, 3600, token.ExpiresIn)

		// The issued token must carry the caller's roles for the policy layer
		claims, err := jwtService.ValidateToken(token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		userRepo.On("GetByEmail", mock.Anything, "ghost@student.edu").Return(nil, nil)

		svc := NewAuthService(userRepo, roleRepo, nil, testJWTService())
		token, err := svc.Login(context.Background(), "ghost@student.edu", "whatever")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("wrong password yields the same error as unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)

		stored := &models.User{
			ID:       42,
			Email:    "john@student.edu",
			Password: hashFor(t, "S3cret!pass"),
		}
		userRepo.On("GetByEmail", mock.Anything, "john@student.edu").Return(stored, nil)

		svc := NewAuthService(userRepo, roleRepo, nil, testJWTService())
		token, err := svc.Login(context.Background(), "john@student.edu", "wrong-password")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Nil(t, token)
	})
}
