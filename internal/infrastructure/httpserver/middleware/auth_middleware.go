package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/matchpulse/futsal-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware guards the dashboard API with the delegated admin credential
// pair. Session handling lives in the fronting layer; this is plain basic auth.
type AuthMiddleware struct {
	adminUser    string
	passwordHash string
	logger       *logrus.Logger
}

func NewAuthMiddleware(adminUser, passwordHash string, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{adminUser: adminUser, passwordHash: passwordHash, logger: logger}
}

// RequireBasicAuth validates credentials against the configured admin pair.
func (m *AuthMiddleware) RequireBasicAuth() echo.MiddlewareFunc {
	return echoMiddleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.adminUser)) == 1
		passOK := utils.CheckPassword(m.passwordHash, password)
		if !userOK || !passOK {
			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"user": username, "path": c.Path()}).Warn("rejected credentials")
			}
			return false, nil
		}
		return true, nil
	})
}
