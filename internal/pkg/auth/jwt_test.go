package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medm/attendance/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "attendance.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	user := &models.User{
		ID:    42,
		Email: "john@student.edu",
		Roles: []models.Role{
			{ID: 1, Name: "ROLE_ADMIN"},
			{ID: 2, Name: "ROLE_USER"},
		},
	}

	token, expiresIn, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "john@student.edu", claims.Email)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, claims.Roles)
	assert.Equal(t, []models.RoleName{models.RoleAdmin, models.RoleUser}, claims.RoleNames())
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"well formed header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
