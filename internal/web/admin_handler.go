package web

import (
	"reviewdesk/internal/session"
	apperrors "reviewdesk/internal/shared/errors"
	"reviewdesk/internal/view"

	"github.com/gofiber/fiber/v2"
)

// Dashboard renders the admin overview: progress counters, the user
// list, and the auto-assignment trigger. Either fetch may fail
// independently; the page renders what it got.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	page := h.page(c, "Dashboard")
	api := h.client(c)

	stats, err := api.Statistics(c.UserContext())
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("load statistics failed: %v", err)
		stats = nil
	}

	users, err := api.ListUsers(c.UserContext())
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("load users failed: %v", err)
		page = page.WithNotice(view.NoticeError, "Failed to load users: "+apperrors.Display(err))
	}

	markup, rerr := view.RenderDashboard(view.DashboardVM{
		Page:  page,
		Stats: stats,
		Users: users,
	})
	if rerr != nil {
		return rerr
	}
	return sendHTML(c, fiber.StatusOK, markup)
}

// TriggerAssign asks the backend to auto-assign pending papers, then
// returns to the dashboard with the outcome.
func (h *Handler) TriggerAssign(c *fiber.Ctx) error {
	if err := h.client(c).TriggerAssignment(c.UserContext()); err != nil {
		h.log.WithContext(c.UserContext()).Errorf("trigger assignment failed: %v", err)
		return redirectWithNotice(c, session.DashboardPath, view.NoticeError,
			"Assignment failed: "+apperrors.Display(err))
	}
	return redirectWithNotice(c, session.DashboardPath, view.NoticeInfo, "Papers assigned")
}
