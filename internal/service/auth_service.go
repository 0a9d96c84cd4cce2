package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kisanbandhu/console/internal/repository"
)

const keySessionSecret = "session.jwt_secret"

const sessionDuration = 24 * time.Hour

// User is the authenticated console operator.
type User struct {
	Username string `json:"username"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthService authenticates the console operator against the configured
// admin credential and manages session tokens.
type AuthService interface {
	// Login checks the credential and returns a session token.
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	// ValidateToken reports whether a session token is valid.
	ValidateToken(ctx context.Context, token string) (bool, error)
	// CurrentUser returns the operator identity for a valid token.
	CurrentUser(ctx context.Context, token string) (*User, error)
}

type authService struct {
	repo     repository.SettingsRepository
	username string
	password string
}

// NewAuthService creates an auth service backed by the given admin
// credential. The token signing secret is generated on first use and
// persisted in settings, so sessions survive restarts.
func NewAuthService(repo repository.SettingsRepository, username, password string) AuthService {
	return &authService{repo: repo, username: username, password: password}
}

func (s *authService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	// Compare both fields before deciding, so timing does not reveal
	// which one was wrong.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if userOK&passOK != 1 {
		return nil, ErrInvalidCredentials
	}

	secret, err := s.signingSecret(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(username, secret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  &User{Username: username},
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (bool, error) {
	claims, err := s.parseToken(ctx, tokenString)
	if err != nil {
		return false, err
	}
	return claims != nil, nil
}

func (s *authService) CurrentUser(ctx context.Context, tokenString string) (*User, error) {
	claims, err := s.parseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	return &User{Username: sub}, nil
}

func (s *authService) parseToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	setting, err := s.repo.Get(ctx, keySessionSecret)
	if err != nil || setting == nil || setting.Value == "" {
		return nil, ErrInvalidToken
	}
	secretBytes, err := hex.DecodeString(setting.Value)
	if err != nil {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretBytes, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// signingSecret loads the persisted signing secret, generating one on
// first login.
func (s *authService) signingSecret(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, keySessionSecret)
	if err != nil {
		return "", fmt.Errorf("load session secret: %w", err)
	}
	if setting != nil && setting.Value != "" {
		return setting.Value, nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	secretHex := hex.EncodeToString(secret)
	if err := s.repo.Set(ctx, keySessionSecret, secretHex); err != nil {
		return "", fmt.Errorf("save session secret: %w", err)
	}
	return secretHex, nil
}

func (s *authService) generateToken(username, secretHex string) (string, error) {
	secretBytes, err := hex.DecodeString(secretHex)
	if err != nil {
		return "", fmt.Errorf("decode session secret: %w", err)
	}

	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(sessionDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretBytes)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}
