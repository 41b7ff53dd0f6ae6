package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"therapy-clinic-api/internal/converter"
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"
	"therapy-clinic-api/internal/service"
	"therapy-clinic-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	VerifyToken(ctx context.Context, token string) (*dto.VerifyTokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.AppUserRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.AppUserRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, nil, &user.ID, entity.AuditActionUserLogin, "app_user", strconv.FormatInt(user.ID, 10), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

// issueTokens signs a new access/refresh pair and whitelists both.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.AppUser) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessExpiry := u.jwtService.GetAccessExpiry()
	if err := u.tokenStore.Save(ctx, user.ID, accessTokenID, refreshTokenID, accessExpiry, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessExpiry.Seconds()),
		ExpiresAt:    time.Now().Add(accessExpiry).UTC(),
		User:         converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int64, accessTokenID, refreshToken string) error {
	refreshTokenID := ""
	if refreshToken != "" {
		// a refresh token that is invalid or belongs to someone else is ignored
		claims, err := u.jwtService.ValidateTokenType(refreshToken, jwt.RefreshToken)
		if err == nil && claims.UserID == userID {
			refreshTokenID = claims.TokenID
		}
	}

	if err := u.tokenStore.Revoke(ctx, userID, accessTokenID, refreshTokenID); err != nil {
		return err
	}

	if err := u.auditService.LogDelete(ctx, nil, &userID, entity.AuditActionUserLogout, "app_user", strconv.FormatInt(userID, 10), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateTokenType(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// rotation: the presented refresh token is spent whatever happens next
	consumed, err := u.tokenStore.ConsumeRefreshToken(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) VerifyToken(ctx context.Context, token string) (*dto.VerifyTokenResponse, error) {
	claims, err := u.jwtService.ValidateTokenType(token, jwt.AccessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	valid, err := u.tokenStore.IsAccessTokenValid(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	user, err := u.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.VerifyTokenResponse{Valid: true, User: user}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
