package view

import (
	"fmt"

	"reviewdesk/internal/backend"
	"reviewdesk/internal/session"
)

// Notice kinds for the page banner.
const (
	NoticeError = "error"
	NoticeInfo  = "info"
)

// Empty-state and placeholder copy.
const (
	EmptyPapersMessage   = "No papers available."
	EmptyAssignedMessage = "No papers awaiting your review."
	NoCommentsMarker     = "None"
)

// statusClasses is the fixed status -> CSS class mapping. Unmapped
// statuses render unstyled, not as an error.
var statusClasses = map[backend.PaperStatus]string{
	backend.StatusPending:  "status-pending",
	backend.StatusAssigned: "status-assigned",
	backend.StatusReviewed: "status-reviewed",
}

// StatusClass returns the CSS class for a paper status, or "" when the
// status is unmapped.
func StatusClass(status backend.PaperStatus) string {
	return statusClasses[status]
}

// Page carries what every view needs: title, navigation, and the
// notice banner for surfaced errors and confirmations.
type Page struct {
	Title      string
	Nav        []session.NavItem
	Notice     string
	NoticeKind string
}

// NewPage builds the shared page chrome from the session.
func NewPage(title string, sess *session.Session) Page {
	return Page{Title: title, Nav: sess.NavItems()}
}

// WithNotice returns a copy of the page carrying a banner message.
func (p Page) WithNotice(kind, message string) Page {
	p.Notice = message
	p.NoticeKind = kind
	return p
}

// LoginVM renders the login form.
type LoginVM struct {
	Page
	Username string
}

// PaperRow is one row of the paper list table.
type PaperRow struct {
	ID          string
	Title       string
	Author      string
	Status      backend.PaperStatus
	StatusClass string
	// CanReview gates the review affordance: the viewer holds the
	// expert role and the paper is assigned.
	CanReview bool
}

// PaperListVM renders the paper list.
type PaperListVM struct {
	Page
	Rows []PaperRow
	// ShowAssigned links the reviewer queue for experts.
	ShowAssigned bool
	// CanSubmit shows the new-paper affordance.
	CanSubmit bool
}

// Empty reports whether the empty-state message should render instead
// of the table.
func (vm PaperListVM) Empty() bool {
	return len(vm.Rows) == 0
}

// NewPaperListVM derives the list view-model from a paper collection
// and the viewer's role.
func NewPaperListVM(page Page, papers []backend.Paper, role session.Role) PaperListVM {
	vm := PaperListVM{
		Page:         page,
		ShowAssigned: role == session.RoleExpert,
		CanSubmit:    role == session.RoleAuthor || role == session.RoleAdmin,
	}
	for _, p := range papers {
		vm.Rows = append(vm.Rows, PaperRow{
			ID:          p.ID,
			Title:       p.Title,
			Author:      p.Author,
			Status:      p.Status,
			StatusClass: StatusClass(p.Status),
			CanReview:   role == session.RoleExpert && p.Status == backend.StatusAssigned,
		})
	}
	return vm
}

// ReviewRow is one submitted review in the detail view.
type ReviewRow struct {
	ReviewerName string
	Score        int
	Comments     string
}

// PaperDetailVM renders a single paper, with submitted reviews when the
// viewer is an admin.
type PaperDetailVM struct {
	Page
	ID           string
	Title        string
	Author       string
	AbstractText string
	FileURL      string
	Status       backend.PaperStatus
	StatusClass  string
	ScoreDisplay string
	HasScore     bool
	Reviews      []ReviewRow
	ShowReviews  bool
}

// NewPaperDetailVM derives the detail view-model. reviews may be nil
// for non-admin viewers. An aggregate score renders at one decimal
// place when present.
func NewPaperDetailVM(page Page, paper *backend.Paper, reviews []backend.Review, showReviews bool) PaperDetailVM {
	vm := PaperDetailVM{
		Page:         page,
		ID:           paper.ID,
		Title:        paper.Title,
		Author:       paper.Author,
		AbstractText: paper.AbstractText,
		FileURL:      paper.FileURL,
		Status:       paper.Status,
		StatusClass:  StatusClass(paper.Status),
		ShowReviews:  showReviews && len(reviews) > 0,
	}
	if paper.Score != nil {
		vm.HasScore = true
		vm.ScoreDisplay = fmt.Sprintf("%.1f", *paper.Score)
	}
	for _, r := range reviews {
		comments := r.Comments
		if comments == "" {
			comments = NoCommentsMarker
		}
		vm.Reviews = append(vm.Reviews, ReviewRow{
			ReviewerName: r.ReviewerName,
			Score:        r.Score,
			Comments:     comments,
		})
	}
	return vm
}

// ReviewFormVM renders the review form with the target paper as
// context. Score and Comments echo the previous input on a rejected
// submit.
type ReviewFormVM struct {
	Page
	Paper    PaperDetailVM
	PaperID  string
	Score    string
	Comments string
}

// AssignedRow is one entry of the reviewer's queue.
type AssignedRow struct {
	PaperID     string
	Title       string
	Author      string
	Status      backend.PaperStatus
	StatusClass string
}

// AssignedVM renders the reviewer's queue.
type AssignedVM struct {
	Page
	Rows []AssignedRow
}

// Empty reports whether the queue empty-state should render.
func (vm AssignedVM) Empty() bool {
	return len(vm.Rows) == 0
}

// NewAssignedVM derives the queue view-model from the assignment list.
func NewAssignedVM(page Page, assignments []backend.Assignment) AssignedVM {
	vm := AssignedVM{Page: page}
	for _, a := range assignments {
		vm.Rows = append(vm.Rows, AssignedRow{
			PaperID:     a.Paper.ID,
			Title:       a.Paper.Title,
			Author:      a.Paper.Author,
			Status:      a.Paper.Status,
			StatusClass: StatusClass(a.Paper.Status),
		})
	}
	return vm
}

// DashboardVM renders the admin dashboard.
type DashboardVM struct {
	Page
	Stats *backend.Statistics
	Users []backend.User
}

// NewPaperVM renders the paper submission form, echoing the draft on a
// rejected submit.
type NewPaperVM struct {
	Page
	Draft backend.PaperDraft
}

// ForbiddenVM renders the permission-denied view.
type ForbiddenVM struct {
	Page
}
