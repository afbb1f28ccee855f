package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/application/user/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/auth"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	authenticateUC usecases.AuthenticateExecutor
	logger         logger.Interface
}

func NewAuthMiddleware(authenticateUC usecases.AuthenticateExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticateUC: authenticateUC,
		logger:         logger,
	}
}

// RequireAuth rejects requests without a valid bearer token. On success
// the caller's user ID and username are stored in the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.authenticate(c)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("rejected request with invalid token",
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"security_event", errors.IsSecurityEvent(err))
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, identity.UserID)
		c.Set(constants.ContextKeyUsername, identity.Username)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*auth.Identity, error) {
	token, present := bearerToken(c.GetHeader(constants.HeaderAuthorization))
	if !present {
		return nil, errors.NewMissingTokenError()
	}
	// a header with the wrong scheme is an attempt, not an absence
	if token == "" {
		return nil, errors.NewTokenInvalidError()
	}
	return m.authenticateUC.Execute(c.Request.Context(), token)
}

// bearerToken extracts the token from an Authorization header. present is
// false only when the header is absent or empty. The scheme is matched
// case-insensitively.
func bearerToken(header string) (token string, present bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", true
	}
	return strings.TrimSpace(rest), true
}
