package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"agency-console-api/internal/config"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret: "test-secret-key",
		TTL:    time.Hour,
	}
}

func storedAdmin(t *testing.T, password string) *domain.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Admin{
		BaseModel:    domain.BaseModel{ID: uuid.New()},
		Email:        "ops@studionord.example",
		Name:         "Operator",
		PasswordHash: string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	admin := storedAdmin(t, "correct horse battery")
	adminRepo := &MockAdminRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.Admin, error) {
			assert.Equal(t, admin.Email, email)
			return admin, nil
		},
	}
	svc := NewAuthService(adminRepo, nil, testJWTConfig(), testAgencyConfig(), zap.NewNop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    admin.Email,
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, admin.ID, resp.AdminID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	// the issued token must verify against the configured secret
	parsed, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, admin.ID.String(), claims["sub"])
	assert.Equal(t, admin.Email, claims["email"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	admin := storedAdmin(t, "correct horse battery")
	adminRepo := &MockAdminRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.Admin, error) {
			return admin, nil
		},
	}
	svc := NewAuthService(adminRepo, nil, testJWTConfig(), testAgencyConfig(), zap.NewNop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    admin.Email,
		Password: "wrong password",
	})
	require.Error(t, err)

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeUnauthorized, appErr.Code)
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	// default mock returns gorm.ErrRecordNotFound
	adminRepo := &MockAdminRepository{}
	svc := NewAuthService(adminRepo, nil, testJWTConfig(), testAgencyConfig(), zap.NewNop())

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@studionord.example",
		Password: "whatever",
	})
	require.Error(t, unknownErr)

	admin := storedAdmin(t, "correct horse battery")
	adminRepo2 := &MockAdminRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.Admin, error) {
			return admin, nil
		},
	}
	svc2 := NewAuthService(adminRepo2, nil, testJWTConfig(), testAgencyConfig(), zap.NewNop())
	_, wrongPassErr := svc2.Login(context.Background(), &dto.LoginRequest{
		Email:    admin.Email,
		Password: "whatever",
	})
	require.Error(t, wrongPassErr)

	var unknownApp, wrongApp *response.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongPassErr, &wrongApp)
	assert.Equal(t, unknownApp.Code, wrongApp.Code)
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
}

func TestAuthService_Logout_WithoutRedisIsNoop(t *testing.T) {
	svc := NewAuthService(&MockAdminRepository{}, nil, testJWTConfig(), testAgencyConfig(), zap.NewNop())
	assert.NoError(t, svc.Logout(context.Background(), "some.jwt.token"))
}

func TestAuthService_SeedAdmin_CreatesFirstAccount(t *testing.T) {
	var created *domain.Admin
	adminRepo := &MockAdminRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		CreateFunc: func(ctx context.Context, admin *domain.Admin) error {
			created = admin
			return nil
		},
	}
	agency := testAgencyConfig()
	agency.SeedAdminEmail = "founder@studionord.example"
	agency.SeedAdminPass = "initial-password-1"

	svc := NewAuthService(adminRepo, nil, testJWTConfig(), agency, zap.NewNop())
	require.NoError(t, svc.SeedAdmin(context.Background()))

	require.NotNil(t, created)
	assert.Equal(t, "founder@studionord.example", created.Email)
	assert.NotEqual(t, "initial-password-1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("initial-password-1")))
}

func TestAuthService_SeedAdmin_SkipsWhenAdminsExist(t *testing.T) {
	createCalls := 0
	adminRepo := &MockAdminRepository{
		CountFunc:  func(ctx context.Context) (int64, error) { return 2, nil },
		CreateFunc: func(ctx context.Context, admin *domain.Admin) error { createCalls++; return nil },
	}
	agency := testAgencyConfig()
	agency.SeedAdminEmail = "founder@studionord.example"
	agency.SeedAdminPass = "initial-password-1"

	svc := NewAuthService(adminRepo, nil, testJWTConfig(), agency, zap.NewNop())
	require.NoError(t, svc.SeedAdmin(context.Background()))
	assert.Zero(t, createCalls)
}
