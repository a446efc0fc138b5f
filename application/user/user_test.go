package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/gg-motors/application/user"
	"github.com/muhammadheryan/gg-motors/cmd/config"
	"github.com/muhammadheryan/gg-motors/constant"
	redismocks "github.com/muhammadheryan/gg-motors/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/gg-motors/mocks/repository/user"
	"github.com/muhammadheryan/gg-motors/model"
	userrepo "github.com/muhammadheryan/gg-motors/repository/user"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-key-for-jwt-signing",
			JWTExpiration:    time.Hour,
			LoginMaxAttempts: 5,
			LoginLockout:     15 * time.Minute,
		},
	}
}

func assertErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestUserApp_Register(t *testing.T) {
	userID := primitive.NewObjectID()

	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "  Test User ",
					Email:    "Test@Example.com",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				// Check email doesn't exist
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				// Create user
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Test User" &&
							ent.Email == "test@example.com" &&
							ent.Role == constant.RoleUser &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(func(ctx context.Context, ent *model.UserEntity) (*model.UserEntity, error) {
						ent.ID = userID
						return ent, nil
					}).
					Once()
			},
			want: &model.RegisterResponse{
				Message: "User registered successfully",
				User: model.PublicUser{
					ID:    userID.Hex(),
					Name:  "Test User",
					Email: "test@example.com",
				},
			},
		},
		{
			name: "error: email already exists",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "existing@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{ID: userID, Email: "existing@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: unique index rejects concurrent registration",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "race@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "race@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, userrepo.ErrDuplicateEmail).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: short password",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Password: "123",
				},
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: password beyond bcrypt limit",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Password: strings.Repeat("p", 80),
				},
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: invalid email",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "not-an-email",
					Password: "password123",
				},
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: repository Get email returns error",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Email:    "test@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	userID := primitive.NewObjectID()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &model.UserEntity{
		ID:           userID,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
	}
	attemptsKey := constant.LoginAttemptsKeyPrefix + "test@example.com"

	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			req:  &model.LoginRequest{Email: " TEST@example.com ", Password: "password123"},
			mockCall: func(f fields) {
				f.redisRepo.On("GetInt", mock.Anything, attemptsKey).Return(int64(2), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(storedUser, nil).
					Once()
				f.redisRepo.On("Delete", mock.Anything, attemptsKey).Return(nil).Once()
			},
		},
		{
			name: "success: redis failure does not block login",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.redisRepo.On("GetInt", mock.Anything, attemptsKey).Return(int64(0), errors.New("redis down")).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(storedUser, nil).
					Once()
				f.redisRepo.On("Delete", mock.Anything, attemptsKey).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "error: user not found",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.redisRepo.On("GetInt", mock.Anything, attemptsKey).Return(int64(0), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()
				f.redisRepo.On("IncrWithTTL", mock.Anything, attemptsKey, 15*time.Minute).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "wrong-password"},
			mockCall: func(f fields) {
				f.redisRepo.On("GetInt", mock.Anything, attemptsKey).Return(int64(0), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(storedUser, nil).
					Once()
				f.redisRepo.On("IncrWithTTL", mock.Anything, attemptsKey, 15*time.Minute).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: too many failed attempts",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.redisRepo.On("GetInt", mock.Anything, attemptsKey).Return(int64(5), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTooManyRequests,
		},
		{
			name:    "error: missing password",
			req:     &model.LoginRequest{Email: "test@example.com"},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: repository returns error",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.redisRepo.On("GetInt", mock.Anything, attemptsKey).Return(int64(0), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				return
			}

			require.NotNil(t, got)
			assert.NotEmpty(t, got.Token)
			assert.Equal(t, model.PublicUser{ID: userID.Hex(), Name: "Test User", Email: "test@example.com"}, got.User)

			identity, err := app.ValidateToken(context.Background(), got.Token)
			require.NoError(t, err)
			assert.Equal(t, userID, identity.UserID)
			assert.Equal(t, constant.RoleUser, identity.Role)
		})
	}
}

func TestUserApp_LoginWithoutThrottle(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.LoginMaxAttempts = 0

	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRedisRepository(t)
	userRepo.
		On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
		Return(nil, nil).
		Once()

	app := appuser.NewUserApp(cfg, userRepo, redisRepo)
	_, err := app.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assertErrorType(t, err, constant.ErrInvalidCredentials)
	redisRepo.AssertNotCalled(t, "IncrWithTTL", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserApp_Profile(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("success", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{ID: userID}).
			Return(&model.UserEntity{ID: userID, Name: "Test User", Email: "test@example.com", Phone: "0812", Role: constant.RoleUser}, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))
		got, err := app.Profile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, &model.ProfileResponse{
			ID:    userID.Hex(),
			Name:  "Test User",
			Email: "test@example.com",
			Phone: "0812",
			Role:  constant.RoleUser,
		}, got)
	})

	t.Run("error: user not found", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{ID: userID}).
			Return(nil, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))
		_, err := app.Profile(context.Background(), userID)
		assertErrorType(t, err, constant.ErrUserNotFound)
	})
}

func TestUserApp_ValidateToken(t *testing.T) {
	app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))

	_, err := app.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
