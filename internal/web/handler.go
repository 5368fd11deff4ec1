package web

import (
	"net/url"

	"reviewdesk/internal/backend"
	"reviewdesk/internal/config"
	"reviewdesk/internal/shared/logger"
	"reviewdesk/internal/view"

	"github.com/gofiber/fiber/v2"
)

// Handler owns the console's page controllers. One instance serves all
// requests; per-request state lives in the session attached by
// middleware.
type Handler struct {
	api *backend.Client
	cfg *config.Config
	log logger.Logger
}

// NewHandler creates the page controller set.
func NewHandler(api *backend.Client, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		api: api,
		cfg: cfg,
		log: log.WithComponent("web"),
	}
}

// client binds the backend client to the request's session credential.
func (h *Handler) client(c *fiber.Ctx) *backend.Client {
	return h.api.WithTokens(h.sess(c))
}

// page builds the shared chrome, folding in any notice carried by the
// query string after a redirect.
func (h *Handler) page(c *fiber.Ctx, title string) view.Page {
	p := view.NewPage(title, h.sess(c))
	if msg := c.Query("msg"); msg != "" {
		kind := c.Query("kind")
		if kind != view.NoticeError {
			kind = view.NoticeInfo
		}
		p = p.WithNotice(kind, msg)
	}
	return p
}

// redirectWithNotice redirects carrying a banner message in the query
// string.
func redirectWithNotice(c *fiber.Ctx, path, kind, msg string) error {
	q := url.Values{}
	q.Set("msg", msg)
	q.Set("kind", kind)
	return c.Redirect(path+"?"+q.Encode(), fiber.StatusFound)
}

// Root lands the user on their role's home view.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.Redirect(h.sess(c).LandingPath(), fiber.StatusFound)
}
