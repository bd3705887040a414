package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the few token claims shown to the user.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Claims decodes the token as a JWT without verifying it. The token stays
// opaque to the session; ok is false when there is no token or it is not a
// JWT.
func (s *Session) Claims() (Claims, bool) {
	token := s.Token()
	if token == "" {
		return Claims{}, false
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, ok := mc["sub"]; ok {
		c.Subject = fmt.Sprint(sub)
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}
