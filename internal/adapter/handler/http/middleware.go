package http

import (
	"net/http"
	"strings"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// AuthMiddleware verifies the bearer token and stores the payload in the
// request context under authorizationPayloadKey.
func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeaderKey)
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationTypeBearer {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the token payload when a valid bearer
// token is present but never rejects the request. Used on public
// endpoints that attribute submissions to logged-in users.
func OptionalAuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeaderKey)
		if authHeader != "" {
			fields := strings.Fields(authHeader)
			if len(fields) == 2 && strings.ToLower(fields[0]) == authorizationTypeBearer {
				if payload, err := tokenService.VerifyToken(fields[1]); err == nil {
					c.Set(authorizationPayloadKey, payload)
				}
			}
		}
		c.Next()
	}
}

// AdminMiddleware requires an already-authenticated admin. Must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, exists := getAuthPayload(c, authorizationPayloadKey)
		if !exists {
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if payload.Role != domain.Admin {
			newErrorResponse(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	if !ok {
		return nil, false
	}
	return payload, true
}
