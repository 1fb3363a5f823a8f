package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"soko.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SubjectIDKey is the context key for the authenticated account ID
	SubjectIDKey = "subjectId"
	// SubjectEmailKey is the context key for the authenticated email
	SubjectEmailKey = "subjectEmail"
	// SubjectRoleKey is the context key for the customer role
	SubjectRoleKey = "subjectRole"
)

// CustomerAuth authenticates customer-account bearer tokens
func CustomerAuth(jwtService *jwt.JWTService) gin.HandlerFunc {
	return authMiddleware(jwtService, jwt.AccountCustomer)
}

// MerchantAuth authenticates merchant-account bearer tokens
func MerchantAuth(jwtService *jwt.JWTService) gin.HandlerFunc {
	return authMiddleware(jwtService, jwt.AccountMerchant)
}

func authMiddleware(jwtService *jwt.JWTService, account string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		if claims.Account != account {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Wrong account type for this endpoint",
			})
			return
		}

		c.Set(SubjectIDKey, claims.SubjectID)
		c.Set(SubjectEmailKey, claims.Email)
		c.Set(SubjectRoleKey, claims.Role)

		c.Next()
	}
}

// GetSubjectID gets the authenticated account ID from context
func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	id, exists := c.Get(SubjectIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return id.(uuid.UUID), true
}

// GetSubjectEmail gets the authenticated email from context
func GetSubjectEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(SubjectEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetSubjectRole gets the customer role from context
func GetSubjectRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(SubjectRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// RequireRole creates a middleware that requires one of the given
// customer roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetSubjectRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Role not found",
			})
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireAdmin creates a middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("ADMIN")
}

// RequireMarketer creates a middleware that requires the marketer or
// admin role
func RequireMarketer() gin.HandlerFunc {
	return RequireRole("MARKETER", "ADMIN")
}
