package usecase

import (
	"context"
	"errors"
	"fmt"

	"dental-clinic-booking/config"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/infrastructure/metrics"
	"dental-clinic-booking/internal/service"
	"dental-clinic-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AdminAuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, email, tokenID string) error
}

type adminAuthUsecase struct {
	log          *logrus.Logger
	adminEmail   string
	passwordHash []byte
	jwtService   *jwt.JWTService
	tokenRepo    repository.TokenRepository
	auditService service.AuditService
	metrics      *metrics.Metrics
}

// NewAdminAuthUsecase hashes the configured plain password when no hash is configured
func NewAdminAuthUsecase(
	log *logrus.Logger,
	cfg config.AdminConfig,
	jwtService *jwt.JWTService,
	tokenRepo repository.TokenRepository,
	auditService service.AuditService,
	m *metrics.Metrics,
) (AdminAuthUsecase, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = generated
	}

	return &adminAuthUsecase{
		log:          log,
		adminEmail:   cfg.Email,
		passwordHash: hash,
		jwtService:   jwtService,
		tokenRepo:    tokenRepo,
		auditService: auditService,
		metrics:      m,
	}, nil
}

func (u *adminAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	passwordErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password))
	if req.Email != u.adminEmail || passwordErr != nil {
		u.metrics.ObserveAdminLogin(false)
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(req.Email, jwt.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	expiry := u.jwtService.GetAccessExpiry()
	if err := u.tokenRepo.Store(ctx, tokenID, expiry); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	u.metrics.ObserveAdminLogin(true)
	if err := u.auditService.LogAction(ctx, req.Email, entity.AuditActionAdminLogin, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiry.Seconds()),
		Email:       req.Email,
	}, nil
}

func (u *adminAuthUsecase) Logout(ctx context.Context, email, tokenID string) error {
	if err := u.tokenRepo.Revoke(ctx, tokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	if err := u.auditService.LogAction(ctx, email, entity.AuditActionAdminLogout, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return nil
}
