package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	APIKeyHeader = "X-API-Key"
	authTypeKey  = "authType"
)

var (
	ErrMissingAPIKey = errors.New("no authentication provided")
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// APIKeyValidator checks request keys against the configured set. Keys are held as
// SHA-256 digests and compared in constant time.
type APIKeyValidator struct {
	digests [][sha256.Size]byte
}

// NewAPIKeyValidator creates a validator for keys. Empty entries are ignored.
func NewAPIKeyValidator(keys []string) *APIKeyValidator {
	v := &APIKeyValidator{}
	for _, k := range keys {
		if k == "" {
			continue
		}
		v.digests = append(v.digests, sha256.Sum256([]byte(k)))
	}
	return v
}

// Enabled reports whether any key is configured
func (v *APIKeyValidator) Enabled() bool {
	return len(v.digests) > 0
}

// Validate returns nil when key matches one of the configured keys
func (v *APIKeyValidator) Validate(key string) error {
	if key == "" {
		return ErrMissingAPIKey
	}
	digest := sha256.Sum256([]byte(key))
	match := 0
	for _, d := range v.digests {
		match |= subtle.ConstantTimeCompare(digest[:], d[:])
	}
	if match != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

// EnsureValidAPIKey rejects requests without a valid X-API-Key header
func EnsureValidAPIKey(v *APIKeyValidator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := v.Validate(c.GetHeader(APIKeyHeader)); err != nil {
			logger.Debug("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(authTypeKey, "api_key")
		c.Next()
	}
}
