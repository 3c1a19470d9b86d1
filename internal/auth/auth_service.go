package auth

import (
	"context"
	"errors"

	autherrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/errors"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/token"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	users  user.Repository
	tokens *token.Manager
	logger *zap.Logger
}

func NewService(users user.Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.Error("login lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		l.Warn("login rejected: unknown email")
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		l.Warn("login rejected: wrong password", zap.String("user_id", u.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		l.Warn("login rejected: inactive user", zap.String("user_id", u.ID.String()))
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	accessToken, exp, err := s.tokens.Issue(u.ID.String(), u.Role)
	if err != nil {
		l.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed.WithCause(err)
	}

	l.Info("user logged in", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   exp.Unix(),
		User:        toAuthResponse(u),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}
	res := toAuthResponse(u)
	return &res, nil
}

func toAuthResponse(u *user.User) AuthResponse {
	res := AuthResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
	if u.ManagerID != nil {
		m := u.ManagerID.String()
		res.ManagerID = &m
	}
	return res
}
