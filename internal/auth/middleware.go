package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/response"
)

// IssueXSRF sets a fresh XSRF cookie on the response. A failure to sign is
// not fatal to the read it accompanies.
func IssueXSRF(m *XSRFManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := m.Issue()
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		// Readable by scripts so the client can echo it in XSRFHeaderName.
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(XSRFCookieName, token, int(m.TTL().Seconds()), "/", "", false, false)

		c.Next()
	}
}

// VerifyXSRF requires the XSRF header to match the XSRF cookie and carry a valid token.
func VerifyXSRF(m *XSRFManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(XSRFHeaderName)
		if header == "" {
			response.Abort(c, http.StatusForbidden, "missing XSRF token")
			return
		}

		cookie, err := c.Cookie(XSRFCookieName)
		if err != nil || subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
			response.Abort(c, http.StatusForbidden, "XSRF token mismatch")
			return
		}

		if err := m.Validate(header); err != nil {
			response.Abort(c, http.StatusForbidden, "invalid or expired XSRF token")
			return
		}

		c.Next()
	}
}
