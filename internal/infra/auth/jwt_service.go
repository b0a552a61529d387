package auth

import (
	"time"

	"happnings/config"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewJWTService creates a TokenService signing HS256 tokens with the
// configured secrets.
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
	}
}

func (s *jwtService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	accessToken, err := s.signToken(userID, tokenTypeAccess, accessTokenDuration, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign access token")
	}

	refreshToken, err := s.signToken(userID, tokenTypeRefresh, refreshTokenDuration, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign refresh token")
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) signToken(userID uuid.UUID, tokenType string, duration time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, tokenTypeAccess, s.accessSecret)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, tokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) parseToken(tokenString, expectedType string, secret []byte) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Type != expectedType {
		return nil, errors.Errorf("unexpected token type: %s", claims.Type)
	}

	return claims, nil
}

func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return refreshTokenDuration
}
