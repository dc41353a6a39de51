package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionIdLocal     = "session_id"
	sessionCookieLocal = "session_cookie"
)

type SessionMiddlewareConfig struct {
	Secret     string
	CookieName string
	Secure     bool
}

// SessionMiddleware binds every request to a browser session.
// The cookie holds an HS256 token whose "sid" claim is the session id; a missing,
// forged or malformed cookie gets a fresh session. The cookie has no expiry so it
// dies with the browser session.
func SessionMiddleware(cfg SessionMiddlewareConfig) fiber.Handler {
	secret := []byte(cfg.Secret)

	return func(ctx *fiber.Ctx) error {
		sid, ok := parseSessionToken(ctx.Cookies(cfg.CookieName), secret)
		if !ok {
			sid = uuid.NewString()
			token, err := signSessionToken(sid, secret)
			if err != nil {
				return err
			}
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				HTTPOnly: true,
				Secure:   cfg.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		ctx.Locals(sessionIdLocal, sid)
		ctx.Locals(sessionCookieLocal, cfg.CookieName)
		return ctx.Next()
	}
}

// SessionID returns the id bound by SessionMiddleware, or "" outside of it.
func SessionID(ctx *fiber.Ctx) string {
	sid, _ := ctx.Locals(sessionIdLocal).(string)
	return sid
}

// ExpireSessionCookie tells the browser to drop the session cookie.
func ExpireSessionCookie(ctx *fiber.Ctx) {
	name, _ := ctx.Locals(sessionCookieLocal).(string)
	if name == "" {
		return
	}
	ctx.ClearCookie(name)
}

func signSessionToken(sid string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	})
	return token.SignedString(secret)
}

func parseSessionToken(raw string, secret []byte) (string, bool) {
	if raw == "" {
		return "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(sid); err != nil {
		return "", false
	}
	return sid, true
}
