package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agency-console-api/internal/config"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/middleware"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error)
	SeedAdmin(ctx context.Context) error
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	adminRepo   repository.AdminRepository
	redisClient *redis.Client
	jwtCfg      config.JWTConfig
	agency      config.AgencyConfig
	logger      *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	adminRepo repository.AdminRepository,
	redisClient *redis.Client,
	jwtCfg config.JWTConfig,
	agency config.AgencyConfig,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		adminRepo:   adminRepo,
		redisClient: redisClient,
		jwtCfg:      jwtCfg,
		agency:      agency,
		logger:      logger,
	}
}

// Login verifies admin credentials and issues a session JWT. Bad email
// and bad password return the same error so login probes learn nothing.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up account", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("Failed login attempt", zap.String("email", req.Email))
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", "")
	}

	expiresAt := time.Now().Add(s.jwtCfg.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   admin.ID.String(),
		"email": admin.Email,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign token", err.Error())
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		AdminID:     admin.ID,
		Email:       admin.Email,
	}, nil
}

// Logout revokes the session token by blacklisting it until its natural
// expiry. Without redis the token simply expires on its own.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	if s.redisClient == nil {
		return nil
	}

	ttl := s.jwtCfg.TTL
	if claims, err := s.parseClaims(token); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if remaining := time.Until(exp.Time); remaining > 0 {
				ttl = remaining
			}
		}
	}

	if err := s.redisClient.Set(ctx, middleware.BlacklistKeyPrefix+token, "revoked", ttl).Err(); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to revoke token", err.Error())
	}
	return nil
}

// Me returns the account of the currently authenticated admin
func (s *authServiceImpl) Me(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Account not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up account", err.Error())
	}
	return &dto.AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		CreatedAt: admin.CreatedAt,
	}, nil
}

// SeedAdmin creates the initial operator account when the admins table is
// empty, so a fresh deployment is immediately usable
func (s *authServiceImpl) SeedAdmin(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.agency.SeedAdminEmail == "" || s.agency.SeedAdminPass == "" {
		s.logger.Warn("No admin accounts exist and no seed credentials configured")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.agency.SeedAdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.Admin{
		Email:        s.agency.SeedAdminEmail,
		Name:         "Administrator",
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Seeded initial admin account", zap.String("email", admin.Email))
	return nil
}

func (s *authServiceImpl) parseClaims(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
