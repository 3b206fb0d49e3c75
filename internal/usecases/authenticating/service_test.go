package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/infrastructure/repository/mocks"
	"github.com/benchtrust/budgetplanung-api/internal/config"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	svc := NewService(userRepo, config.Auth{Secret: testSecret, TokenTTL: time.Hour}).(*Service)

	return svc, userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	activeUser := &domain.User{ID: 7, Name: "Lena", Email: "lena@benchtrust.de", PasswordHash: hashPassword(t, "Geheim123"), Active: true, RoleID: RoleAnalyst}

	tests := []struct {
		name         string
		email        string
		password     string
		setup        func(repo *mocks.MockUserRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:     "Login com sucesso gera token válido",
			email:    "  LENA@benchtrust.de ",
			password: "Geheim123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "lena@benchtrust.de").Return(activeUser, nil)
			},
		},
		{
			name:         "Email e senha obrigatórios",
			email:        "",
			password:     "",
			setup:        func(repo *mocks.MockUserRepository) {},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@benchtrust.de",
			password: "Geheim123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ninguem@benchtrust.de").Return(nil, nil)
			},
			expectedErr:  ErrUserNotFound,
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "lena@benchtrust.de",
			password: "Geheim123",
			setup: func(repo *mocks.MockUserRepository) {
				inactive := *activeUser
				inactive.Active = false
				repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&inactive, nil)
			},
			expectedErr:  ErrUserDisabled,
			expectedCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "lena@benchtrust.de",
			password: "Falsch123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(activeUser, nil)
			},
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Erro no banco de dados",
			email:    "lena@benchtrust.de",
			password: "Geheim123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			expectedErr:  ErrDatabaseOperation,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tt.setup(repo)

			token, err := svc.LoginUser(ctx, tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.expectedCode, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
			assert.Equal(t, RoleAnalyst, claims.UserRoleID)
		})
	}
}

func TestValidateToken(t *testing.T) {
	svc, _ := newTestService(t)
	user := &domain.User{ID: 1, Email: "admin@benchtrust.de", RoleID: RoleAdmin}

	t.Run("Token expirado", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		defer func() { svc.now = time.Now }()

		token, err := svc.generateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		other := NewService(nil, config.Auth{Secret: "outro"}).(*Service)
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := svc.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Cria usuário com perfil viewer por padrão", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "neu@benchtrust.de").Return(nil, nil)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.Equal(t, RoleViewer, u.RoleID)
				assert.True(t, u.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Passwort1")))
				u.ID = 42
				return u, nil
			})

		user, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Neu", Email: "Neu@benchtrust.de", Password: "Passwort1"})

		require.NoError(t, err)
		assert.Equal(t, 42, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, nil)

		_, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Neu", Email: "neu@benchtrust.de", Password: "Passwort1"})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Senha fraca", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Name: "Neu", Email: "neu@benchtrust.de", Password: "kurz"})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestGetUserProfile_NotFound(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetUserByID(gomock.Any(), 99).Return(nil, repository.ErrNotFound)

	_, err := svc.GetUserProfile(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
