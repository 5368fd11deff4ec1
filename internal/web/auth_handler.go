package web

import (
	"reviewdesk/internal/session"
	apperrors "reviewdesk/internal/shared/errors"
	"reviewdesk/internal/view"

	"github.com/gofiber/fiber/v2"
)

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	markup, err := view.RenderLogin(view.LoginVM{
		Page: h.page(c, "Login"),
	})
	if err != nil {
		return err
	}
	return sendHTML(c, fiber.StatusOK, markup)
}

// Login exchanges the submitted credentials for a token, persists it,
// and redirects by role: admins land on the dashboard, everyone else on
// the paper list.
func (h *Handler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	sess := h.sess(c)
	result, err := h.client(c).Login(c.UserContext(), username, password)
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("login failed for %q: %v", username, err)
		vm := view.LoginVM{
			Page:     view.NewPage("Login", sess).WithNotice(view.NoticeError, apperrors.Display(err)),
			Username: username,
		}
		markup, rerr := view.RenderLogin(vm)
		if rerr != nil {
			return rerr
		}
		return sendHTML(c, fiber.StatusUnauthorized, markup)
	}

	sess.Login(result.Token)
	return c.Redirect(sess.LandingPath(), fiber.StatusFound)
}

// Logout clears the stored credential and returns to the login view.
// No backend invalidation call is made.
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.sess(c).Logout()
	return c.Redirect(session.LoginPath, fiber.StatusFound)
}
