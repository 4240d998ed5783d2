package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 14 * 24 * time.Hour
	bcryptCost      = 12
)

// IDGenerator mints refresh token ids (UUIDs in prod).
type IDGenerator interface {
	NewID() string
}

type UserDTO struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ApprovalStatus string `json:"approval_status"`
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
}

type LoginResult struct {
	User              UserDTO  `json:"user"`
	Token             TokenDTO `json:"token"`
	RefreshTokenPlain string   `json:"-"`
}

type RefreshResult struct {
	Token             TokenDTO `json:"token"`
	RefreshTokenPlain string   `json:"-"`
}

// AuthUsecase covers register/login/refresh/logout. Access tokens are HS256
// JWTs carrying sub/role/tv; refresh tokens are opaque, stored hashed and
// rotated on every use.
type AuthUsecase struct {
	cfg    config.Config
	users  repo.UserRepository
	tokens repo.RefreshTokenRepository
	idGen  IDGenerator
	clock  Clock
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	tokens repo.RefreshTokenRepository,
	idGen IDGenerator,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:    cfg,
		users:  users,
		tokens: tokens,
		idGen:  idGen,
		clock:  clock,
	}
}

// Register creates an account. Students are usable immediately; sellers and
// riders wait for admin approval.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserDTO, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	role := model.Role(in.Role)
	switch role {
	case model.RoleStudent, model.RoleSeller, model.RoleRider:
		// OK; admins are provisioned, not registered
	default:
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return UserDTO{}, NewHTTPError(http.StatusConflict, "email already used")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	approval := model.ApprovalPending
	if role == model.RoleStudent {
		approval = model.ApprovalApproved
	}

	now := u.clock.Now()
	user := model.User{
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		ApprovalStatus: approval,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return LoginResult{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	now := u.clock.Now()
	access, err := u.issueAccessToken(user, now)
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	refreshPlain, err := u.issueRefreshToken(ctx, user.ID, in.UserAgent, now)
	if err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.LastLoginAt = &now
	if err := u.users.Update(ctx, user); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return LoginResult{
		User:              toUserDTO(user),
		Token:             TokenDTO{AccessToken: access, ExpiresIn: int(accessTokenTTL.Seconds())},
		RefreshTokenPlain: refreshPlain,
	}, nil
}

// Refresh rotates the refresh token and re-issues an access token.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshPlain string, userAgent string) (RefreshResult, error) {
	if strings.TrimSpace(refreshPlain) == "" {
		return RefreshResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	token, err := u.tokens.FindByTokenHash(ctx, hashToken(refreshPlain))
	if errors.Is(err, repo.ErrNotFound) {
		return RefreshResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return RefreshResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	if token.RevokedAt != nil || now.After(token.ExpiresAt) {
		return RefreshResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, token.UserID)
	if err != nil || !user.IsActive {
		return RefreshResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.tokens.Revoke(ctx, token.ID, now); err != nil {
		return RefreshResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	access, err := u.issueAccessToken(user, now)
	if err != nil {
		return RefreshResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	newPlain, err := u.issueRefreshToken(ctx, user.ID, userAgent, now)
	if err != nil {
		return RefreshResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return RefreshResult{
		Token:             TokenDTO{AccessToken: access, ExpiresIn: int(accessTokenTTL.Seconds())},
		RefreshTokenPlain: newPlain,
	}, nil
}

func (u *AuthUsecase) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	now := u.clock.Now()
	if err := u.tokens.RevokeAllForUser(ctx, userID, now); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// bump token_version so outstanding access tokens die too
	if _, err := u.users.IncrementTokenVersion(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AuthUsecase) issueAccessToken(user model.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"tv":   user.TokenVersion,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func (u *AuthUsecase) issueRefreshToken(ctx context.Context, userID int64, userAgent string, now time.Time) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	plain := base64.RawURLEncoding.EncodeToString(raw)

	token := model.RefreshToken{
		ID:        u.idGen.NewID(),
		UserID:    userID,
		TokenHash: hashToken(plain),
		UserAgent: userAgent,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return "", err
	}
	return plain, nil
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func toUserDTO(u model.User) UserDTO {
	return UserDTO{
		ID:             u.ID,
		Email:          u.Email,
		Role:           string(u.Role),
		ApprovalStatus: string(u.ApprovalStatus),
	}
}
