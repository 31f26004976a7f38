package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/domain/tenant"
	"fieldops/internal/infrastructure/auth"
	"fieldops/pkg"
)

// Verifier turns a bearer token into the caller identity.
type Verifier interface {
	Verify(token string) (tenant.Identity, error)
}

var _ Verifier = (*auth.TokenVerifier)(nil)

// Identity rejects requests without a valid bearer token with 401 and
// attaches the caller identity to the request context.
func Identity(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authorization header required")
			return
		}
		id, err := v.Verify(header)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token expired"
			}
			abortUnauthorized(c, msg)
			return
		}
		c.Request = c.Request.WithContext(tenant.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
