package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
	"go.uber.org/zap"
)

// Caller is the authenticated caller taken from the JWT claims.
type Caller struct {
	Subject string `json:"sub"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
}

type contextKey string

const callerContextKey contextKey = "authenticated_caller"

// JWTConfig holds the configuration for JWT middleware
type JWTConfig struct {
	Secret    string
	Logger    *zap.Logger
	SkipPaths []string // Paths to skip JWT validation
}

func reject(c echo.Context, title, code string) error {
	return c.JSON(http.StatusUnauthorized, mollie.Fail[json.RawMessage](http.StatusUnauthorized, title, code))
}

// JWTMiddleware validates HMAC-signed bearer tokens. With an empty secret
// it lets every request through.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if config.Secret == "" {
			return next
		}

		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, skipPath := range config.SkipPaths {
				if strings.HasPrefix(path, skipPath) {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				config.Logger.Warn("Missing authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return reject(c, "Authorization header required", "MISSING_AUTH_HEADER")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				config.Logger.Warn("Invalid authorization header format",
					zap.String("path", path))
				return reject(c, "Invalid authorization header format. Expected: Bearer <token>", "INVALID_AUTH_FORMAT")
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.Secret), nil
			})
			if err != nil || !token.Valid {
				config.Logger.Warn("JWT validation failed",
					zap.Error(err),
					zap.String("path", path))
				return reject(c, "Invalid or expired token", "INVALID_TOKEN")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return reject(c, "Invalid token claims", "INVALID_CLAIMS")
			}

			caller := &Caller{}
			caller.Subject, _ = claims.GetSubject()
			caller.Email, _ = claims["email"].(string)
			caller.Role, _ = claims["role"].(string)

			ctx := context.WithValue(c.Request().Context(), callerContextKey, caller)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("caller", caller.Subject)

			config.Logger.Debug("Caller authenticated",
				zap.String("sub", caller.Subject),
				zap.String("path", path))

			return next(c)
		}
	}
}

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (*Caller, bool) {
	caller, ok := ctx.Value(callerContextKey).(*Caller)
	return caller, ok && caller != nil
}
