// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bcraftd/config"
	"bcraftd/internal/domain/service"
	"bcraftd/internal/errors"
)

// defaultAccessTokenTTL applies when no TTL is configured and none is passed to Issue.
const defaultAccessTokenTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte            // Secret key for signing and verifying tokens.
	method     jwt.SigningMethod // HMAC signing method, HS256 unless configured otherwise.
	defaultTTL time.Duration     // Lifetime applied when Issue gets no explicit ttl.
}

// NewJWTService is the constructor for jwtService.
// It validates the configured secret and algorithm up front so that a
// misconfigured service fails at startup instead of on the first request.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	algorithm := "HS256"
	defaultTTL := defaultAccessTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.TokenAlgorithm != "" {
			algorithm = cfg.Auth.TokenAlgorithm
		}
		if cfg.Auth.AccessTokenTTL > 0 {
			defaultTTL = cfg.Auth.AccessTokenTTL
		}
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, errors.Errorf("unknown jwt signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("jwt signing algorithm %q is not an HMAC method", algorithm)
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Access),
		method:     method,
		defaultTTL: defaultTTL,
	}, nil
}

// Issue signs the given claims and injects the registered "exp" and "iat"
// claims. A caller-supplied "exp" is always overridden so every token the
// service hands out carries a lifetime the service controls.
func (s *jwtService) Issue(claims jwt.MapClaims, ttl ...time.Duration) (string, error) {
	effectiveTTL := s.defaultTTL
	if len(ttl) > 0 {
		effectiveTTL = ttl[0]
	}

	now := time.Now()
	merged := make(jwt.MapClaims, len(claims)+2)
	for name, value := range claims {
		merged[name] = value
	}
	merged["iat"] = now.Unix()
	merged["exp"] = now.Add(effectiveTTL).Unix()

	signed, err := jwt.NewWithClaims(s.method, merged).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Decode parses and validates a token and returns its claims. Signature,
// structure and expiry problems all collapse into service.ErrInvalidToken
// so callers cannot probe why a token was rejected.
func (s *jwtService) Decode(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			// Reject any non-HMAC algorithm before touching the signature.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}

// Verify reports whether the token is valid and, when expectedSubject is
// given, whether its "sub" claim matches exactly.
func (s *jwtService) Verify(tokenString string, expectedSubject ...string) bool {
	claims, err := s.Decode(tokenString)
	if err != nil {
		return false
	}
	if len(expectedSubject) == 0 {
		return true
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return false
	}

	return subject == expectedSubject[0]
}

// IsExpired reports whether the token is expired. Tokens that fail
// validation for any other reason are treated as expired too.
func (s *jwtService) IsExpired(tokenString string) bool {
	_, err := s.Decode(tokenString)

	return err != nil
}
