package web

import (
	"time"

	"reviewdesk/internal/config"

	"github.com/gofiber/fiber/v2"
)

// cookieStore backs the session credential with a cookie under the
// fixed name from config. Reads come from the request, writes go to the
// response; both sides of one page load see a consistent value because
// login and logout are full redirects.
type cookieStore struct {
	ctx *fiber.Ctx
	cfg *config.Config
	// pending overlays the request cookie with a value written during
	// this request, so a login immediately followed by a role check
	// sees the fresh credential.
	pending *string
}

func newCookieStore(c *fiber.Ctx, cfg *config.Config) *cookieStore {
	return &cookieStore{ctx: c, cfg: cfg}
}

func (s *cookieStore) Token() (string, bool) {
	if s.pending != nil {
		return *s.pending, *s.pending != ""
	}
	token := s.ctx.Cookies(s.cfg.CookieName)
	return token, token != ""
}

func (s *cookieStore) SetToken(token string) {
	s.pending = &token
	s.ctx.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     s.cfg.CookiePath,
		Domain:   s.cfg.CookieDomain,
		MaxAge:   s.cfg.CookieMaxAge,
		Secure:   s.cfg.CookieSecure,
		HTTPOnly: s.cfg.CookieHTTPOnly,
		SameSite: s.cfg.CookieSameSite,
	})
}

func (s *cookieStore) Clear() {
	empty := ""
	s.pending = &empty
	s.ctx.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     s.cfg.CookiePath,
		Domain:   s.cfg.CookieDomain,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   s.cfg.CookieSecure,
		HTTPOnly: s.cfg.CookieHTTPOnly,
		SameSite: s.cfg.CookieSameSite,
	})
}
