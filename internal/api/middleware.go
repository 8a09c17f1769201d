package api

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"maitred/internal/tools"
)

const roleContextKey = "session_role"

// roleMiddleware derives the session role from the Authorization
// header. A valid bearer token with role "internal" grants staff
// access; everything else (no token, bad token, other roles) is
// treated as an external customer session.
func roleMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(roleContextKey, resolveRole(c.GetHeader("Authorization"), secret))
		c.Next()
	}
}

func resolveRole(header, secret string) tools.Role {
	if secret == "" {
		return tools.RoleExternal
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return tools.RoleExternal
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return tools.RoleExternal
	}

	if role, ok := claims["role"].(string); ok && role == string(tools.RoleInternal) {
		return tools.RoleInternal
	}
	return tools.RoleExternal
}

func sessionRole(c *gin.Context) tools.Role {
	if v, ok := c.Get(roleContextKey); ok {
		if role, ok := v.(tools.Role); ok {
			return role
		}
	}
	return tools.RoleExternal
}

// StaffToken mints an HS256 token carrying the internal role, for
// issuing staff credentials from an admin tool.
func StaffToken(secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": string(tools.RoleInternal),
	})
	return token.SignedString([]byte(secret))
}
