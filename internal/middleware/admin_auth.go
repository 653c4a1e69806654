package middleware

import (
	"net/http"

	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"
	"skyzone-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware validates that the caller holds an admin token.
// Every failure mode is answered with 401: a missing, invalid, expired or
// non-admin token is not distinguished for the caller.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		isDenylisted, err := services.IsDenylisted(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if isDenylisted {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			if logger.Log != nil {
				logger.Log.Warn("non-admin access attempt on admin endpoint",
					zap.String("path", c.Request.URL.Path))
			}
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
			c.Abort()
			return
		}

		// Handlers only need the claims; loading the user row is skipped in
		// test mode where no DB is wired.
		if gin.Mode() != gin.TestMode {
			if userIDFloat, ok := claims["user_id"].(float64); ok {
				if user, err := services.FindUserByID(uint(userIDFloat)); err == nil {
					c.Set("user", user)
				}
			}
		}

		c.Next()
	}
}
