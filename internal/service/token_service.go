package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/internal/model"
	"github.com/pathway-infinity/pathway-api/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(user *model.User) (string, *SessionClaims, error)
	// Parse rejects bad signatures, other algorithms, expired and revoked
	// tokens with the same unauthenticated error.
	Parse(ctx context.Context, token string) (*SessionClaims, error)
	Revoke(ctx context.Context, claims *SessionClaims) error
	TTL() time.Duration
}

type tokenService struct {
	secret  []byte
	ttl     time.Duration
	revoked repository.RevokedTokenRepository
	now     func() time.Time
	idGen   func() string
}

func NewTokenService(cfg *config.Config, revoked repository.RevokedTokenRepository) TokenService {
	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &tokenService{
		secret:  []byte(cfg.Session.Secret),
		ttl:     ttl,
		revoked: revoked,
		now:     func() time.Time { return time.Now().UTC() },
		idGen:   uuid.NewString,
	}
}

func (s *tokenService) TTL() time.Duration { return s.ttl }

func (s *tokenService) Issue(user *model.User) (string, *SessionClaims, error) {
	now := s.now()
	claims := &SessionClaims{
		UID:   user.ID,
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.idGen(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, wrapError(KindInternal, "Failed to create session", err)
	}
	return token, claims, nil
}

func (s *tokenService) Parse(ctx context.Context, token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.UID == "" {
		return nil, invalidSession(err)
	}

	if claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, wrapError(KindUpstreamCall, "Session store unavailable", err)
		}
		if revoked {
			return nil, invalidSession(errors.New("token revoked"))
		}
	}
	return claims, nil
}

func (s *tokenService) Revoke(ctx context.Context, claims *SessionClaims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return wrapError(KindUpstreamCall, "Session store unavailable", err)
	}
	if s.revoked.Enabled() {
		log.Debug().Str("user_id", claims.UID).Msg("TokenService: session revoked")
	}
	return nil
}

func invalidSession(cause error) error {
	if cause == nil {
		cause = errors.New("token rejected")
	}
	return wrapError(KindUnauthenticated, "Unauthorized", fmt.Errorf("%w: %v", ErrInvalidSession, cause))
}
