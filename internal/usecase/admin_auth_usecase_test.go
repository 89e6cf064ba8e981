package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dental-clinic-booking/config"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/repository"
	"dental-clinic-booking/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminAuth(t *testing.T, cfg config.AdminConfig) (AdminAuthUsecase, *jwt.JWTService, *recordingAuditService) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	audit := &recordingAuditService{}
	u, err := NewAdminAuthUsecase(quietLogger(), cfg, jwtService, repository.NewMemoryTokenRepository(nil), audit, nil)
	require.NoError(t, err)
	return u, jwtService, audit
}

func TestAdminLogin_Success(t *testing.T) {
	u, jwtService, audit := newAdminAuth(t, config.AdminConfig{Email: "admin@dentalclinic.com", Password: "password123"})

	token, err := u.Login(context.Background(), &dto.LoginRequest{Email: "admin@dentalclinic.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@dentalclinic.com", claims.Email)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, []string{entity.AuditActionAdminLogin}, audit.actions)
}

func TestAdminLogin_WithConfiguredHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	u, _, _ := newAdminAuth(t, config.AdminConfig{Email: "admin@dentalclinic.com", PasswordHash: string(hash)})

	_, err = u.Login(context.Background(), &dto.LoginRequest{Email: "admin@dentalclinic.com", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	u, _, audit := newAdminAuth(t, config.AdminConfig{Email: "admin@dentalclinic.com", Password: "password123"})
	ctx := context.Background()

	_, err := u.Login(ctx, &dto.LoginRequest{Email: "admin@dentalclinic.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = u.Login(ctx, &dto.LoginRequest{Email: "someone@dentalclinic.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, audit.actions)
}

func TestAdminLogout_RevokesToken(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	tokens := repository.NewMemoryTokenRepository(nil)
	u, err := NewAdminAuthUsecase(quietLogger(), config.AdminConfig{Email: "admin@dentalclinic.com", Password: "password123"},
		jwtService, tokens, &recordingAuditService{}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	token, err := u.Login(ctx, &dto.LoginRequest{Email: "admin@dentalclinic.com", Password: "password123"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	exists, err := tokens.Exists(ctx, claims.TokenID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, u.Logout(ctx, claims.Email, claims.TokenID))
	exists, err = tokens.Exists(ctx, claims.TokenID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAdminLoginLogout_SurviveAuditFailure(t *testing.T) {
	u, jwtService, audit := newAdminAuth(t, config.AdminConfig{Email: "admin@dentalclinic.com", Password: "password123"})
	audit.fail = errors.New("audit store down")
	ctx := context.Background()

	token, err := u.Login(ctx, &dto.LoginRequest{Email: "admin@dentalclinic.com", Password: "password123"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	require.NoError(t, u.Logout(ctx, claims.Email, claims.TokenID))
	assert.Equal(t, []string{entity.AuditActionAdminLogin, entity.AuditActionAdminLogout}, audit.actions)
}
