package middleware

import (
	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminKeyHeader is the header carrying the plaintext admin key.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware guards admin routes with a shared key compared against a bcrypt hash.
// An empty hash disables the admin API entirely.
func AdminKeyMiddleware(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if keyHash == "" {
			logger.Warn("Admin request rejected, admin key not configured")
			abortWithError(c, apperrors.NewMissingConfigurationError("Admin API is not configured"))
			return
		}

		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			abortWithError(c, apperrors.NewUnauthorizedError("Admin key required"))
			return
		}

		if !utils.CheckSecretHash(key, keyHash) {
			logger.Warn("Invalid admin key")
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid admin key"))
			return
		}

		c.Next()
	}
}
