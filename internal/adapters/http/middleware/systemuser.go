package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/systemuser"
)

const ClientIDHeader = "X-Client-ID"

// SystemUser puts the client named by X-Client-ID into the request context. Malformed
// ids are ignored so the configured system client applies.
func SystemUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(ClientIDHeader)
		if domain.ValidateID(clientID) {
			ctx := systemuser.WithSystemUser(c.Request.Context(), domain.SystemUser{ClientID: domain.ID(clientID)})
			ctx = logger.WithAttributes(ctx, map[string]any{"client_id": clientID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
