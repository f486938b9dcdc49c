package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	autherrors "go-hrpms/internal/auth/errors"
	"go-hrpms/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}

type service struct {
	repo     Repository
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, jwtSecret string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:     repo,
		secret:   []byte(jwtSecret),
		ttl:      ttl,
		now:      time.Now,
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

// Login never tells an unknown username apart from a wrong password.
func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login unknown user", zap.String("username", username))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, apperror.FromDB(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.Uint("user_id", user.ID))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(user, expiresAt)
	if err != nil {
		return LoginResponse{}, apperror.WithCause(apperror.ErrInternal, err)
	}

	s.logger.Info("login succeeded", zap.Uint("user_id", user.ID))

	return LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        mapToResponse(user),
	}, nil
}

func (s *service) Me(ctx context.Context, userID string) (UserResponse, error) {
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil || id == 0 {
		return UserResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, apperror.FromDB(err)
	}
	return mapToResponse(user), nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := s.validate.Struct(req); err != nil {
		return UserResponse{}, apperror.MapValidationError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, apperror.WithCause(apperror.ErrInternal, err)
	}

	user := &User{Username: req.Username, PasswordHash: string(hashed)}
	if err := s.repo.Create(ctx, user); err != nil {
		if apperror.IsUniqueViolation(err, "uq_hr_users_username") {
			return UserResponse{}, autherrors.ErrUsernameTaken
		}
		s.logger.Error("create user failed", zap.String("username", req.Username), zap.Error(err))
		return UserResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("user created", zap.Uint("user_id", user.ID))
	return mapToResponse(*user), nil
}

func (s *service) generateToken(user User, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"exp":      expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
