package auth

import (
	"time"

	"ethos/config"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/domain/service"
	"ethos/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// tokenClaims is the JWT payload: user_id, email, iat, exp.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
	parser *jwt.Parser
}

// NewJWTService builds the TokenService from secretKey.token and auth.tokenTTL.
func NewJWTService(cfg *config.Config, clock clockwork.Clock) (service.TokenService, error) {
	if cfg.Auth == nil {
		return nil, domainerrors.Configuration("auth config must be provided")
	}

	return NewJWTServiceWithSecret(cfg.SecretKey.Token, cfg.Auth.TokenTTL, clock)
}

// NewJWTServiceWithSecret returns an HS256 token service. A zero ttl is accepted and
// produces tokens that are already expired when issued.
func NewJWTServiceWithSecret(secret string, ttl time.Duration, clock clockwork.Clock) (service.TokenService, error) {
	if secret == "" {
		return nil, domainerrors.Configuration("token secret must be provided")
	}
	if ttl < 0 {
		return nil, domainerrors.Configuration("token ttl must not be negative, got %s", ttl)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

func (s *jwtService) GenerateToken(claims service.Claims) (string, error) {
	now := s.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		// NumericDate truncates to whole seconds, so a token may expire up to
		// one second before now+ttl.
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// VerifyToken checks signature and algorithm before expiry, so a forged token is
// reported as invalid even when its exp is in the past.
func (s *jwtService) VerifyToken(token string) (*service.Claims, error) {
	claims := &tokenClaims{}

	_, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.TokenExpired(err)
		}

		return nil, domainerrors.TokenInvalid(err)
	}

	if claims.UserID == "" {
		return nil, domainerrors.TokenInvalid(errors.New("token has no user_id claim"))
	}

	return &service.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
