package user

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/repository/sqlerr"
	userrepo "github.com/muhammadheryan/vastu-shakti/repository/user"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Authenticate(ctx context.Context, tokenString string) (*model.Identity, error)
	GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserProfile, error)
}

// dummyPasswordHash is compared against on failed lookups so unknown emails cost the same as wrong passwords.
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("vastu-shakti-unused-password"), constant.BcryptCost)
	return hash
})

type UserAppImpl struct {
	config   *config.Config
	userRepo userrepo.UserRepository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		config:   config,
		userRepo: userRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Mobile: req.Mobile})
	if err != nil {
		logger.Error("[Register] err userRepo.Get mobile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), constant.BcryptCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	language := req.Language
	if language == "" {
		language = constant.LanguageEnglish
	}

	now := time.Now()
	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: string(hashedPassword),
		State:        req.State,
		Occupation:   req.Occupation,
		Language:     language,
		Role:         constant.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// the unique index still wins a race between the pre-check and the insert
		if sqlerr.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.generateJWT(userEntity.ID)
	if err != nil {
		logger.Error("[Register] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Register] user registered", zap.Uint64("user_id", userEntity.ID))

	return &model.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    model.NewUserProfile(userEntity),
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// unknown email, deactivated account and wrong password are indistinguishable to the caller
	if user == nil || !user.IsActive {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(req.Password))
		metrics.RecordAuthAttempt(false)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.RecordAuthAttempt(false)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn("[Login] err userRepo.UpdateLastLogin", zap.Uint64("user_id", user.ID), zap.String("error", err.Error()))
	} else {
		user.LastLoginAt = &now
	}

	metrics.RecordAuthAttempt(true)

	return &model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    model.NewUserProfile(user),
	}, nil
}

// Authenticate verifies the bearer token and resolves it to the current state of its user.
func (s *UserAppImpl) Authenticate(ctx context.Context, tokenString string) (*model.Identity, error) {
	if tokenString == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := s.parseJWT(tokenString)
	if err != nil {
		logger.Debug("[Authenticate] rejected token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Authenticate] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || !user.IsActive {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return &model.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return model.NewUserProfile(user), nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.Language != nil {
		user.Language = *req.Language
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewUserProfile(user), nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, error) {
	jti, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate jti: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        jti.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *UserAppImpl) parseJWT(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("invalid user id in token")
	}
	if claims.ID == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	return userID, nil
}
