package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now

var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrTokenMalformed error = errors.New("token malformed")
var ErrAudienceMismatch error = errors.New("token audience mismatch")
var ErrNoSubject error = errors.New("cannot issue a token without a user")

// TokenInfo identifies the user a token is issued for.
type TokenInfo struct {
	Username string
	Subject  string
}

type JWTService struct {
	secret   []byte
	audience string
	expiry   time.Duration
}

func NewJWTService(jwtSecret []byte, audience string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret:   jwtSecret,
		audience: audience,
		expiry:   expiry,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	claims := jwt.MapClaims{
		"sub":      data.Subject,
		"username": data.Username,
		"aud":      gen.audience,
		"iat":      TimeNow().Unix(),
		"exp":      TimeNow().Add(gen.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token in one step. An empty user identity
// is rejected rather than silently producing an unusable token.
func (gen *JWTService) Issue(data TokenInfo) (string, error) {
	if data.Username == "" || data.Subject == "" {
		return "", ErrNoSubject
	}
	return gen.Sign(gen.Generate(data))
}

// Validate parses and verifies a signed token. Validation failures map to
// distinct sentinel errors so callers can tell a stale token from a forged one.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			switch {
			case vErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, fmt.Errorf("jwt parse: %w", ErrTokenMalformed)
			case vErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
			}
		}
		return nil, fmt.Errorf("jwt parse: %w", ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	var claims jwt.MapClaims
	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	if !claims.VerifyAudience(gen.audience, true) {
		return nil, ErrAudienceMismatch
	}

	return claims, nil
}
