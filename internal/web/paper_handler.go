package web

import (
	"reviewdesk/internal/backend"
	"reviewdesk/internal/session"
	apperrors "reviewdesk/internal/shared/errors"
	"reviewdesk/internal/view"

	"github.com/gofiber/fiber/v2"
)

// ListPapers renders the paper list. Fetch failures are logged and
// surfaced as a notice; there is no retry.
func (h *Handler) ListPapers(c *fiber.Ctx) error {
	sess := h.sess(c)
	page := h.page(c, "Papers")

	papers, err := h.client(c).ListPapers(c.UserContext())
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("load papers failed: %v", err)
		page = page.WithNotice(view.NoticeError, "Failed to load papers: "+apperrors.Display(err))
	}

	markup, rerr := view.RenderPaperList(view.NewPaperListVM(page, papers, sess.CurrentRole()))
	if rerr != nil {
		return rerr
	}
	return sendHTML(c, fiber.StatusOK, markup)
}

// PaperDetail renders one paper. Admin viewers additionally get the
// submitted reviews; a failed reviews load keeps the detail view usable
// and is only logged.
func (h *Handler) PaperDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	sess := h.sess(c)
	api := h.client(c)

	paper, err := api.GetPaper(c.UserContext(), id)
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("load paper %s failed: %v", id, err)
		return redirectWithNotice(c, session.PapersPath, view.NoticeError,
			"Failed to load paper: "+apperrors.Display(err))
	}

	isAdmin := sess.CurrentRole() == session.RoleAdmin
	var reviews []backend.Review
	if isAdmin {
		reviews, err = api.PaperReviews(c.UserContext(), id)
		if err != nil {
			h.log.WithContext(c.UserContext()).Errorf("load reviews for paper %s failed: %v", id, err)
			reviews = nil
		}
	}

	vm := view.NewPaperDetailVM(h.page(c, paper.Title), paper, reviews, isAdmin)
	markup, rerr := view.RenderPaperDetail(vm)
	if rerr != nil {
		return rerr
	}
	return sendHTML(c, fiber.StatusOK, markup)
}

// NewPaperPage renders the submission form.
func (h *Handler) NewPaperPage(c *fiber.Ctx) error {
	markup, err := view.RenderNewPaper(view.NewPaperVM{
		Page: h.page(c, "Submit paper"),
	})
	if err != nil {
		return err
	}
	return sendHTML(c, fiber.StatusOK, markup)
}

// CreatePaper submits a new paper. Title and author are required
// locally; everything else is the backend's call.
func (h *Handler) CreatePaper(c *fiber.Ctx) error {
	draft := backend.PaperDraft{
		Title:        c.FormValue("title"),
		Author:       c.FormValue("author"),
		AbstractText: c.FormValue("abstractText"),
		FileURL:      c.FormValue("fileUrl"),
	}

	if draft.Title == "" || draft.Author == "" {
		vm := view.NewPaperVM{
			Page:  h.page(c, "Submit paper").WithNotice(view.NoticeError, "Title and author are required"),
			Draft: draft,
		}
		markup, rerr := view.RenderNewPaper(vm)
		if rerr != nil {
			return rerr
		}
		return sendHTML(c, fiber.StatusBadRequest, markup)
	}

	if _, err := h.client(c).CreatePaper(c.UserContext(), draft); err != nil {
		h.log.WithContext(c.UserContext()).Errorf("create paper failed: %v", err)
		vm := view.NewPaperVM{
			Page:  h.page(c, "Submit paper").WithNotice(view.NoticeError, apperrors.Display(err)),
			Draft: draft,
		}
		markup, rerr := view.RenderNewPaper(vm)
		if rerr != nil {
			return rerr
		}
		return sendHTML(c, fiber.StatusBadGateway, markup)
	}

	return redirectWithNotice(c, session.PapersPath, view.NoticeInfo, "Paper submitted")
}
