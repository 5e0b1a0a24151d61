package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"ifuut-api/internal/handler/httperr"
	"ifuut-api/internal/pkg/cookie"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase"
	"ifuut-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

const (
	schemeBearer = "Bearer "
	schemeToken  = "Token "
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// Authenticate resolves the Authorization header when present. Requests without one continue
// anonymously; a header that does not validate is rejected with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}

		var (
			principal *usecase.Principal
			err       error
		)
		switch {
		case strings.HasPrefix(header, schemeBearer):
			principal, err = m.tokenValidator.ValidateAccessToken(c.Request.Context(), strings.TrimSpace(header[len(schemeBearer):]))
		case strings.HasPrefix(header, schemeToken):
			principal, err = m.tokenValidator.ValidateAPIToken(c.Request.Context(), strings.TrimSpace(header[len(schemeToken):]))
		default:
			err = usecase.ErrInvalidToken
		}
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthorized),
				"Invalid or expired token", "Given token not valid for any token type")
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized,
				"Authentication required", "Authentication credentials were not provided.")
			return
		}
		c.Next()
	}
}

// RequireStaff rejects anonymous and non-staff callers alike with 403.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := GetPrincipal(c); !ok || !p.IsStaff {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrStaffRequired,
				"Staff privileges required", "You do not have permission to perform this action.")
			return
		}
		c.Next()
	}
}

// SessionCookie lets a signed-in back-office user reach JSON routes with the access-token
// cookie. It only fills in a principal when Authenticate found none; a cookie that does not
// validate leaves the request anonymous.
func (m *AuthMiddleware) SessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); ok {
			c.Next()
			return
		}
		if token := cookie.GetAccessToken(c); token != "" {
			principal, err := m.tokenValidator.ValidateAccessToken(c.Request.Context(), token)
			if err != nil {
				slog.Debug("Session cookie ignored", "error", err.Error())
			} else {
				c.Set(ctxPrincipalKey, principal)
			}
		}
		c.Next()
	}
}

// AdminSession authenticates back-office pages from the access-token cookie and redirects
// everyone but active staff to loginPath.
func (m *AuthMiddleware) AdminSession(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token != "" {
			principal, err := m.tokenValidator.ValidateAccessToken(c.Request.Context(), token)
			if err == nil && principal.IsStaff {
				c.Set(ctxPrincipalKey, principal)
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
	}
}

func GetPrincipal(c *gin.Context) (*usecase.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*usecase.Principal)
	return p, ok && p != nil
}

// GetActor returns the caller for use cases; nil means anonymous.
func GetActor(c *gin.Context) *shared.Actor {
	p, ok := GetPrincipal(c)
	if !ok {
		return nil
	}
	return &shared.Actor{UserID: p.UserID, IsStaff: p.IsStaff}
}
