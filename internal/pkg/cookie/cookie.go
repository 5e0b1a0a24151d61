package cookie

import (
	"net/http"
	"time"

	"ifuut-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	FlashCookieName       = "admin_flash"
)

// SetAccessToken stores the admin session token. The back-office only ever needs the access token.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetFlash keeps a one-shot message for the next admin page render.
func SetFlash(c *gin.Context, cfg config.CookieConfig, message string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(FlashCookieName, message, 60, "/admin/", cfg.Domain, cfg.Secure, true)
}

// PopFlash reads and clears the flash message.
func PopFlash(c *gin.Context, cfg config.CookieConfig) string {
	msg, err := c.Cookie(FlashCookieName)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(FlashCookieName, "", -1, "/admin/", cfg.Domain, cfg.Secure, true)
	return msg
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
