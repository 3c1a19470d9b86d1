package user

import (
	"context"
	"strings"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"
	usererrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, role string) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, role string) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, role)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	role := strings.TrimSpace(req.Role)
	if !rbac.ValidRole(role) {
		l.Warn("create user rejected: invalid role", zap.String("role", role))
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u := &User{
		ID:       uuid.New(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Role:     role,
		IsActive: true,
	}

	if req.ManagerID != "" {
		mgr, err := s.repo.FindByID(ctx, req.ManagerID)
		if err != nil {
			l.Warn("create user rejected: manager lookup failed", zap.String("manager_id", req.ManagerID), zap.Error(err))
			return UserResponse{}, usererrors.ErrManagerNotFound
		}
		u.ManagerID = &mgr.ID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}
	u.Password = string(hashed)

	if err := s.repo.Create(ctx, u); err != nil {
		mapped := MapRepositoryError(err)
		if mapped == usererrors.ErrUserAlreadyExists {
			l.Warn("create user rejected: email exists", zap.String("email", u.Email))
		} else {
			l.Error("failed to create user", zap.Error(err))
		}
		return UserResponse{}, mapped
	}

	l.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if actorID == id && !isActive {
		return usererrors.ErrCannotDeactivateSelf
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MapRepositoryError(err)
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user status", zap.String("user_id", id), zap.Error(err))
		return err
	}

	l.Info("user status changed", zap.String("user_id", id), zap.Bool("is_active", isActive))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return MapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		l.Warn("change password rejected: wrong current password", zap.String("user_id", userID))
		return usererrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update password", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
