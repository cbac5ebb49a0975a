package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	SessionCookieName = "auth-token"
	sessionKey        = "pathway.session"
)

// TokenFromRequest reads the session token from the cookie, falling back to a
// bearer Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if tok, err := c.Cookie(SessionCookieName); err == nil && tok != "" {
		return tok
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// RequireAuth aborts with 401 unless the request carries a valid, unrevoked
// session token.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := TokenFromRequest(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokens.Parse(c.Request.Context(), tok)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Unauthorized"
			if ae, ok := service.AsAppError(err); ok && ae.Kind != service.KindUnauthenticated {
				status, msg = ae.HTTPStatus(), ae.Message
				log.Error().Err(err).Msg("RequireAuth: session check failed")
			} else {
				log.Debug().Err(err).Msg("RequireAuth: rejected session token")
			}
			c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
			return
		}
		c.Set(sessionKey, claims)
		c.Next()
	}
}

// CurrentSession returns the claims stored by RequireAuth.
func CurrentSession(c *gin.Context) (*service.SessionClaims, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.SessionClaims)
	return claims, ok && claims != nil
}
