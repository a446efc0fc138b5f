package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/muhammadheryan/gg-motors/cmd/config"
	"github.com/muhammadheryan/gg-motors/constant"
	"github.com/muhammadheryan/gg-motors/model"
	redisrepo "github.com/muhammadheryan/gg-motors/repository/redis"
	userrepo "github.com/muhammadheryan/gg-motors/repository/user"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"github.com/muhammadheryan/gg-motors/utils/token"
	validatorx "github.com/muhammadheryan/gg-motors/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Profile(ctx context.Context, userID primitive.ObjectID) (*model.ProfileResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (model.Identity, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	tokens    *token.Manager
	now       func() time.Time
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		tokens:    token.NewManager(config.Auth.JWTSecret, config.Auth.JWTExpiration),
		now:       time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// equalizeTiming spends a bcrypt comparison when the email is unknown so
// response times do not reveal which emails are registered.
func equalizeTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	req.Normalize()
	if errs := validatorx.Validate(req); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if existingUser != nil {
		return nil, cerr.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, cerr.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	logger.Info("[Register] user registered", logger.WithContext(ctx, zap.String("user_id", userEntity.ID.Hex()))...)

	return &model.RegisterResponse{
		Message: "User registered successfully",
		User:    model.NewPublicUser(userEntity),
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = model.NormalizeEmail(req.Email)
	if errs := validatorx.Validate(req); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}

	attemptsKey := constant.LoginAttemptsKeyPrefix + req.Email
	if s.config.Auth.LoginMaxAttempts > 0 {
		attempts, err := s.redisRepo.GetInt(ctx, attemptsKey)
		if err != nil {
			logger.Warn("[Login] err redisRepo.GetInt", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		} else if attempts >= int64(s.config.Auth.LoginMaxAttempts) {
			return nil, cerr.SetCustomError(constant.ErrTooManyRequests)
		}
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	if user == nil {
		equalizeTiming(req.Password)
		s.recordFailedLogin(ctx, attemptsKey)
		return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedLogin(ctx, attemptsKey)
		return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
	}

	if s.config.Auth.LoginMaxAttempts > 0 {
		if err := s.redisRepo.Delete(ctx, attemptsKey); err != nil {
			logger.Warn("[Login] err redisRepo.Delete", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		}
	}

	role := user.Role
	if role == "" {
		role = constant.RoleUser
	}
	tokenString, err := s.tokens.Issue(model.Identity{UserID: user.ID, Role: role})
	if err != nil {
		logger.Error("[Login] err tokens.Issue", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	return &model.LoginResponse{
		Token: tokenString,
		User:  model.NewPublicUser(user),
	}, nil
}

func (s *UserAppImpl) recordFailedLogin(ctx context.Context, key string) {
	if s.config.Auth.LoginMaxAttempts <= 0 {
		return
	}
	if _, err := s.redisRepo.IncrWithTTL(ctx, key, s.config.Auth.LoginLockout); err != nil {
		logger.Warn("[Login] err redisRepo.IncrWithTTL", logger.WithContext(ctx, zap.String("error", err.Error()))...)
	}
}

func (s *UserAppImpl) Profile(ctx context.Context, userID primitive.ObjectID) (*model.ProfileResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Profile] err userRepo.Get", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrUserNotFound)
	}

	return &model.ProfileResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (model.Identity, error) {
	return s.tokens.Verify(tokenString)
}
