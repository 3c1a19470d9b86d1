package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth"
	autherrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/errors"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/token"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user"
	mock_user "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewManager("test-secret", time.Hour)

	pw, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	mockUser := &user.User{
		ID:       uuid.New(),
		FullName: "Asha Patil",
		Email:    "asha@va.io",
		Password: string(pw),
		Role:     "team_leader",
		IsActive: true,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		svc := auth.NewService(repo, tokens)

		repo.EXPECT().FindByEmail(ctx, mockUser.Email).Return(mockUser, nil)

		res, err := svc.Login(ctx, mockUser.Email, "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, "team_leader", res.User.Role)

		claims, err := tokens.Parse(res.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, mockUser.ID.String(), claims.UserID)
		assert.Equal(t, "team_leader", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		svc := auth.NewService(repo, tokens)

		repo.EXPECT().FindByEmail(ctx, mockUser.Email).Return(mockUser, nil)

		_, err := svc.Login(ctx, mockUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		svc := auth.NewService(repo, tokens)

		repo.EXPECT().FindByEmail(ctx, "ghost@va.io").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, "ghost@va.io", "x")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		svc := auth.NewService(repo, tokens)

		inactive := *mockUser
		inactive.IsActive = false
		repo.EXPECT().FindByEmail(ctx, mockUser.Email).Return(&inactive, nil)

		_, err := svc.Login(ctx, mockUser.Email, "password123")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})

	t.Run("store failure is not masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		svc := auth.NewService(repo, tokens)

		dbErr := errors.New("connection reset")
		repo.EXPECT().FindByEmail(ctx, mockUser.Email).Return(nil, dbErr)

		_, err := svc.Login(ctx, mockUser.Email, "password123")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_user.NewMockRepository(ctrl)
	svc := auth.NewService(repo, token.NewManager("s", time.Hour))

	managerID := uuid.New()
	id := uuid.New()
	repo.EXPECT().FindByID(ctx, id.String()).Return(&user.User{ID: id, Email: "e@va.io", Role: "engineer", ManagerID: &managerID}, nil)
	repo.EXPECT().FindByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	me, err := svc.GetMe(ctx, id.String())
	assert.NoError(t, err)
	assert.Equal(t, managerID.String(), *me.ManagerID)

	_, err = svc.GetMe(ctx, "missing")
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
