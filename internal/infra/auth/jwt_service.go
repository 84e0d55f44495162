package auth

import (
	"time"

	"cashless/internal/domain/entity"
	"cashless/internal/domain/service"
	"cashless/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a client token fails signature, expiry or shape checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(secrets *Secrets) (service.TokenService, error) {
	if len(secrets.Token) == 0 {
		return nil, errors.New("token secret must be provided")
	}

	return &jwtService{secret: secrets.Token}, nil
}

// Sign frames the session id, kind and account into a signed token.
func (s *jwtService) Sign(sessionID string, kind entity.TokenKind, accountID uuid.UUID, issuedAt, expiresAt time.Time) (string, error) {
	claims := &service.Claims{
		SessionID: sessionID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Parse validates the signature and expiry of tokenString and returns its claims.
func (s *jwtService) Parse(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == "" || !claims.Kind.IsValid() {
		return nil, ErrInvalidToken
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
