package middleware

import (
	"net/http"
	"strings"

	"github.com/careercracker/webclient/internal/dto"
	"github.com/gin-gonic/gin"
)

// CredentialKey is the gin context key holding the bearer credential.
const CredentialKey = "credential"

// RequireCredential extracts the bearer token from the Authorization header.
// The token is opaque to the gateway; the backend is the authority on its
// validity, so the only local check is presence.
func RequireCredential() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header must be of the form 'Bearer <token>'"})
			return
		}

		ctx.Set(CredentialKey, parts[1])
		ctx.Next()
	}
}

// Credential returns the bearer credential set by RequireCredential.
func Credential(ctx *gin.Context) string {
	return ctx.GetString(CredentialKey)
}
