//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ovenbook/internal/domain/user"
	"ovenbook/internal/infra"
	"ovenbook/internal/pkg/jwt"
	"ovenbook/internal/pkg/password"
	"ovenbook/internal/usecase/commands"
	"ovenbook/internal/usecase/queries"
	"ovenbook/internal/usecase/shared"
	queriesmock "ovenbook/tests/mock/queries"
	sharedmock "ovenbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
	jwtSvc    *jwt.Service
	sut       commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.jwtSvc = jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, 168*time.Hour)
	s.sut = commands.NewAuthCommands(s.uow, s.readStore, s.jwtSvc)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) expectWithDB() {
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("success creates a member", func() {
		newID := uuid.New()
		s.expectWithDB()
		s.tx.EXPECT().Users().Return(s.users)
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (uuid.UUID, error) {
				s.Equal("dana@example.com", u.Email().Value())
				s.Equal("Dana", u.Name())
				s.Equal(user.RoleMember, u.Role())
				s.NotEqual("password123", u.PasswordHash(), "password must be stored hashed")
				return newID, nil
			})

		id, err := s.sut.Register(context.Background(), "dana@example.com", "password123", "Dana")
		s.NoError(err)
		s.Equal(newID, id)
	})

	s.Run("duplicate email", func() {
		s.expectWithDB()
		s.tx.EXPECT().Users().Return(s.users)
		s.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505"}))

		_, err := s.sut.Register(context.Background(), "dana@example.com", "password123", "Dana")
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("invalid email", func() {
		_, err := s.sut.Register(context.Background(), "not-an-email", "password123", "Dana")
		s.ErrorIs(err, commands.ErrAuthenticationFailed)
	})

	s.Run("weak password", func() {
		_, err := s.sut.Register(context.Background(), "dana@example.com", "short", "Dana")
		s.ErrorIs(err, commands.ErrAuthenticationFailed)
	})
}

func (s *AuthCommandsTestSuite) activeUserView(id uuid.UUID) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       id,
		Email:    "dana@example.com",
		Name:     "Dana",
		Role:     "member",
		IsActive: true,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	userID := uuid.New()
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)

	s.Run("success returns a token pair", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "dana@example.com").
			Return(s.activeUserView(userID), hash, nil)
		s.expectWithDB()
		s.tx.EXPECT().Users().Return(s.users)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), userID).Return(nil)

		result, err := s.sut.Login(context.Background(), "dana@example.com", "password123")
		s.Require().NoError(err)
		s.Equal(userID, result.UserID)

		claims, err := s.jwtSvc.ValidateToken(result.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(userID, claims.UserID)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)

		claims, err = s.jwtSvc.ValidateToken(result.TokenPair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeRefresh, claims.TokenType)
	})

	s.Run("wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "dana@example.com").
			Return(s.activeUserView(userID), hash, nil)

		_, err := s.sut.Login(context.Background(), "dana@example.com", "wrong-password")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown email reported as invalid credentials", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, "", notFoundErr())

		_, err := s.sut.Login(context.Background(), "ghost@example.com", "password123")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("inactive account", func() {
		view := s.activeUserView(userID)
		view.IsActive = false
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "dana@example.com").
			Return(view, hash, nil)

		_, err := s.sut.Login(context.Background(), "dana@example.com", "password123")
		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("stale last_login does not fail the login", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "dana@example.com").
			Return(s.activeUserView(userID), hash, nil)
		s.expectWithDB()
		s.tx.EXPECT().Users().Return(s.users)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), userID).
			Return(infra.WrapRepoErr("update failed", errors.New("connection reset")))

		_, err := s.sut.Login(context.Background(), "dana@example.com", "password123")
		s.NoError(err)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	userID := uuid.New()

	s.Run("success rotates the pair", func() {
		refresh, err := s.jwtSvc.GenerateRefreshToken(userID, user.RoleMember)
		s.Require().NoError(err)

		s.readStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(s.activeUserView(userID), nil)

		pair, err := s.sut.RefreshToken(context.Background(), refresh)
		s.Require().NoError(err)

		claims, err := s.jwtSvc.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
	})

	s.Run("access token is not accepted as refresh token", func() {
		access, err := s.jwtSvc.GenerateAccessToken(userID, user.RoleMember)
		s.Require().NoError(err)

		_, err = s.sut.RefreshToken(context.Background(), access)
		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("deactivated user cannot refresh", func() {
		refresh, err := s.jwtSvc.GenerateRefreshToken(userID, user.RoleMember)
		s.Require().NoError(err)

		view := s.activeUserView(userID)
		view.IsActive = false
		s.readStore.EXPECT().FindByID(gomock.Any(), userID).Return(view, nil)

		_, err = s.sut.RefreshToken(context.Background(), refresh)
		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("garbage token", func() {
		_, err := s.sut.RefreshToken(context.Background(), "garbage")
		s.ErrorIs(err, commands.ErrTokenValidation)
	})
}
