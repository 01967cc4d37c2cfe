package gateway

import (
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token() (string, error)
}

// FileTokenSource reads the token from a file, falling back to an environment
// variable.
type FileTokenSource struct {
	Path   string
	EnvVar string
}

func NewFileTokenSource(path, envVar string) *FileTokenSource {
	return &FileTokenSource{Path: path, EnvVar: envVar}
}

func (s *FileTokenSource) Token() (string, error) {
	if s.Path != "" {
		raw, err := os.ReadFile(s.Path)
		if err == nil {
			if tok := strings.TrimSpace(string(raw)); tok != "" {
				return tok, nil
			}
		} else if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "read token file %s", s.Path)
		}
	}
	if tok := strings.TrimSpace(os.Getenv(s.EnvVar)); tok != "" {
		return tok, nil
	}
	return "", errors.New("no auth token found")
}

// StaticTokenSource returns a fixed token; used in tests.
type StaticTokenSource string

func (s StaticTokenSource) Token() (string, error) { return string(s), nil }

// TokenExpiry reads the exp claim from a JWT without verifying the signature.
// Verification belongs to the backend; the client only needs expiry for
// diagnostics before it bothers the network. A token without an exp claim
// yields a zero time and no error.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "parse token")
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether the token carries an exp claim in the past.
// Opaque (non-JWT) tokens and tokens without exp are never reported expired;
// the backend has the last word on those.
func TokenExpired(token string, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil || exp.IsZero() {
		return false
	}
	return exp.Before(now)
}
