package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pawmart/internal/admin/domain"
)

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid token")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	log       *slog.Logger
	admins    AdminRepository
	stats     StatsRepository
	jwtSecret []byte
}

func NewService(log *slog.Logger, admins AdminRepository, stats StatsRepository, jwtSecret string) *Service {
	return &Service{
		log:       log,
		admins:    admins,
		stats:     stats,
		jwtSecret: []byte(jwtSecret),
	}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Admin, error) {
	exists, err := s.admins.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	a := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashPassword(in.Password),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Insert(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info("admin registered", "admin_id", a.ID, "username", a.Username)
	return a, nil
}

type LoginResult struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	Admin       domain.AdminResponse `json:"admin"`
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	a, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if a.PasswordHash != hashPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !a.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := s.issueToken(a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       a.Response(),
	}, nil
}

// Authenticate validates a bearer token and loads the admin it names.
// Disabled accounts are rejected even when the token is still valid.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*domain.Admin, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	adminID, _ := claims["admin_id"].(string)
	if adminID == "" {
		return nil, ErrInvalidToken
	}

	a, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !a.IsActive {
		return nil, ErrAccountDisabled
	}
	return a, nil
}

func (s *Service) DashboardStats(ctx context.Context) (*domain.Stats, error) {
	return s.stats.Collect(ctx)
}

func (s *Service) issueToken(adminID string) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
