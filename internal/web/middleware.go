package web

import (
	"context"
	"strings"
	"time"

	"reviewdesk/internal/session"
	"reviewdesk/internal/shared/contextkeys"
	"reviewdesk/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const sessionLocal = "session"

// WithSession builds the per-request session context from the cookie
// store and makes it available to every handler. Authentication state
// is determined once per page load here. The correlation id minted by
// RequestID and the decoded role are copied into the user context so
// request-scoped loggers pick them up.
func (h *Handler) WithSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.New(newCookieStore(c, h.cfg))
		c.Locals(sessionLocal, sess)

		ctx := c.UserContext()
		if id, ok := c.Locals(string(contextkeys.RequestIDKey)).(string); ok && id != "" {
			ctx = context.WithValue(ctx, contextkeys.RequestIDKey, id)
		}
		if role := sess.CurrentRole(); role != session.RoleNone {
			ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role.String())
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// sess returns the session the middleware attached to the request.
func (h *Handler) sess(c *fiber.Ctx) *session.Session {
	if s, ok := c.Locals(sessionLocal).(*session.Session); ok {
		return s
	}
	// Middleware not run; fall back to a fresh cookie-backed session.
	return session.New(newCookieStore(c, h.cfg))
}

// Protect redirects unauthenticated page loads to the login view. The
// login view itself and static assets stay reachable.
func (h *Handler) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == session.LoginPath || strings.HasPrefix(path, "/static/") {
			return c.Next()
		}
		if !h.sess(c).IsAuthenticated() {
			return c.Redirect(session.LoginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireRole gates a route group on HasPermission. Admin passes every
// gate; everyone else needs an exact role match.
func (h *Handler) RequireRole(required session.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := h.sess(c)
		if !sess.HasPermission(required) {
			markup, err := view.RenderForbidden(view.ForbiddenVM{
				Page: view.NewPage("Access denied", sess),
			})
			if err != nil {
				return err
			}
			return sendHTML(c, fiber.StatusForbidden, markup)
		}
		return c.Next()
	}
}

// RequestID tags every request with a correlation id.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
		Generator: func() string {
			return uuid.NewString()
		},
	})
}

// LoginLimiter rate-limits credential submissions.
func LoginLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many login attempts. Please try again later.")
		},
	})
}

func sendHTML(c *fiber.Ctx, status int, markup []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(markup)
}
