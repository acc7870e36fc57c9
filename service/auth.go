package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/notmobil/backend/models"
	"github.com/notmobil/backend/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (s *Service) CreateToken(userId string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// VerifyToken fails closed: malformed tokens, wrong signatures and expired
// tokens all come back as an error, never a panic. Callers must treat any
// error as unauthenticated.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return s.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	if claims.Subject == "" {
		return "", errors.New("missing subject claim")
	}

	return claims.Subject, nil
}

func (s *Service) AuthenticateToken(ctx context.Context, tokenString string) (models.User, error) {
	if len(tokenString) == 0 {
		return models.User{}, errors.New("token not provided")
	}

	userId, err := s.VerifyToken(tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.Store.GetUser(ctx, userId)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login checks the credential pair against the user store and mints an
// access/refresh token pair. Tokens are stateless: there is no rotation and
// no revocation, a leaked token stays valid until it expires.
func (s *Service) Login(ctx context.Context, email string, password string) (models.User, TokenPair, error) {
	user, err := s.Store.GetUserByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return models.User{}, TokenPair{}, fmt.Errorf("user lookup failed: %w", err)
	}

	accessToken, err := s.CreateToken(user.Id, AccessTokenTTL)
	if err != nil {
		return models.User{}, TokenPair{}, fmt.Errorf("token generation failed: %w", err)
	}

	refreshToken, err := s.CreateToken(user.Id, RefreshTokenTTL)
	if err != nil {
		return models.User{}, TokenPair{}, fmt.Errorf("token generation failed: %w", err)
	}

	return user, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh mints a new access token from a still-valid refresh token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userId, err := s.VerifyToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.CreateToken(userId, AccessTokenTTL)
}
