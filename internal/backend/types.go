package backend

// PaperStatus enumerates the review lifecycle states a paper moves through.
type PaperStatus string

const (
	StatusPending  PaperStatus = "PENDING"
	StatusAssigned PaperStatus = "ASSIGNED"
	StatusReviewed PaperStatus = "REVIEWED"
)

// Paper is a backend-owned submission record. The console holds only
// transient per-view copies and never mutates them locally.
type Paper struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Author       string      `json:"author"`
	AbstractText string      `json:"abstractText"`
	FileURL      string      `json:"fileUrl"`
	Status       PaperStatus `json:"status"`
	// Score is the aggregate review score, absent until reviews exist.
	Score *float64 `json:"score,omitempty"`
}

// PaperDraft carries the fields a new submission requires.
type PaperDraft struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	AbstractText string `json:"abstractText"`
	FileURL      string `json:"fileUrl,omitempty"`
}

// Review is a submitted evaluation of a paper. Reviews are created once
// and never mutated client-side.
type Review struct {
	ID           string `json:"id,omitempty"`
	PaperID      string `json:"paperId"`
	ReviewerName string `json:"reviewerName,omitempty"`
	Score        int    `json:"score"`
	Comments     string `json:"comments"`
}

// Assignment pairs a paper with the reviewer's progress on it.
type Assignment struct {
	Paper  Paper  `json:"paper"`
	Status string `json:"status,omitempty"`
}

// User is a backend account record.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status,omitempty"`
}

// Statistics summarizes review progress for the admin dashboard.
type Statistics struct {
	TotalPapers    int `json:"totalPapers"`
	PendingPapers  int `json:"pendingPapers"`
	AssignedPapers int `json:"assignedPapers"`
	ReviewedPapers int `json:"reviewedPapers"`
	ExpertCount    int `json:"expertCount"`
	ReviewCount    int `json:"reviewCount"`
}

// LoginResult is the response to a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// envelope is the `{"data": ...}` wrapper collection and detail
// responses arrive in.
type envelope[T any] struct {
	Data T `json:"data"`
}

// errorBody is the error response shape; Message may be absent.
type errorBody struct {
	Message string `json:"message"`
}
