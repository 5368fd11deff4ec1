package web

import (
	"strconv"

	"reviewdesk/internal/session"
	apperrors "reviewdesk/internal/shared/errors"
	"reviewdesk/internal/view"

	"github.com/gofiber/fiber/v2"
)

const scoreRangeMessage = "Please enter a valid score between 0 and 100"

// ReviewFormPage loads the target paper as context and renders the
// review form. A missing id parameter is fatal for this view only: the
// user is sent back to the paper list with a notice.
func (h *Handler) ReviewFormPage(c *fiber.Ctx) error {
	paperID := c.Query("id")
	if paperID == "" {
		return redirectWithNotice(c, session.PapersPath, view.NoticeError, "Invalid paper id")
	}

	paper, err := h.client(c).GetPaper(c.UserContext(), paperID)
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("load paper %s for review failed: %v", paperID, err)
		return redirectWithNotice(c, session.PapersPath, view.NoticeError,
			"Failed to load paper: "+apperrors.Display(err))
	}

	vm := view.ReviewFormVM{
		Page:    h.page(c, "Review paper"),
		Paper:   view.NewPaperDetailVM(view.Page{}, paper, nil, false),
		PaperID: paperID,
	}
	markup, rerr := view.RenderReviewForm(vm)
	if rerr != nil {
		return rerr
	}
	return sendHTML(c, fiber.StatusOK, markup)
}

// SubmitReview validates the score locally and submits the review. An
// out-of-range or missing score is rejected without touching the
// network; a server-side failure keeps the form up so the user can
// resubmit.
func (h *Handler) SubmitReview(c *fiber.Ctx) error {
	paperID := c.FormValue("paperId")
	if paperID == "" {
		return redirectWithNotice(c, session.PapersPath, view.NoticeError, "Invalid paper id")
	}

	scoreRaw := c.FormValue("score")
	comments := c.FormValue("comments")

	score, err := validateScore(scoreRaw)
	if err != nil {
		return h.rerenderReviewForm(c, paperID, scoreRaw, comments, apperrors.Display(err), fiber.StatusBadRequest)
	}

	if err := h.client(c).SubmitReview(c.UserContext(), paperID, score, comments); err != nil {
		h.log.WithContext(c.UserContext()).Errorf("submit review for paper %s failed: %v", paperID, err)
		return h.rerenderReviewForm(c, paperID, scoreRaw, comments,
			"Failed to submit review: "+apperrors.Display(err), fiber.StatusBadGateway)
	}

	return redirectWithNotice(c, session.PapersPath, view.NoticeInfo, "Review submitted")
}

// rerenderReviewForm repaints the form with a notice and the previous
// input. The paper context is deliberately not re-fetched: a local
// rejection must not produce a network call.
func (h *Handler) rerenderReviewForm(c *fiber.Ctx, paperID, score, comments, notice string, status int) error {
	vm := view.ReviewFormVM{
		Page:     view.NewPage("Review paper", h.sess(c)).WithNotice(view.NoticeError, notice),
		PaperID:  paperID,
		Score:    score,
		Comments: comments,
	}
	markup, err := view.RenderReviewForm(vm)
	if err != nil {
		return err
	}
	return sendHTML(c, status, markup)
}

// validateScore enforces the inclusive 0-100 bound on the raw form
// value. Missing and non-numeric input fail the same way.
func validateScore(raw string) (int, error) {
	if raw == "" {
		return 0, apperrors.NewValidationError(scoreRangeMessage)
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(scoreRangeMessage)
	}
	if score < 0 || score > 100 {
		return 0, apperrors.NewValidationError(scoreRangeMessage)
	}
	return score, nil
}

// Assigned renders the reviewer's queue.
func (h *Handler) Assigned(c *fiber.Ctx) error {
	page := h.page(c, "Assigned to me")

	assignments, err := h.client(c).AssignedReviews(c.UserContext())
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("load assigned reviews failed: %v", err)
		page = page.WithNotice(view.NoticeError, "Failed to load assigned papers: "+apperrors.Display(err))
	}

	markup, rerr := view.RenderAssigned(view.NewAssignedVM(page, assignments))
	if rerr != nil {
		return rerr
	}
	return sendHTML(c, fiber.StatusOK, markup)
}
