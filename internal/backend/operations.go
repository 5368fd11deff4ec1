package backend

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.Do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CurrentUser fetches the account behind the current credential.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListPapers fetches every paper visible to the current user.
func (c *Client) ListPapers(ctx context.Context) ([]Paper, error) {
	var resp envelope[[]Paper]
	if err := c.Do(ctx, http.MethodGet, "/papers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetPaper fetches a single paper by id.
func (c *Client) GetPaper(ctx context.Context, id string) (*Paper, error) {
	var resp envelope[Paper]
	if err := c.Do(ctx, http.MethodGet, "/papers/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreatePaper submits a new paper.
func (c *Client) CreatePaper(ctx context.Context, draft PaperDraft) (*Paper, error) {
	var resp envelope[Paper]
	if err := c.Do(ctx, http.MethodPost, "/papers", draft, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SubmitReview submits a score and comments for a paper.
func (c *Client) SubmitReview(ctx context.Context, paperID string, score int, comments string) error {
	body := Review{PaperID: paperID, Score: score, Comments: comments}
	return c.Do(ctx, http.MethodPost, "/reviews", body, nil)
}

// AssignedReviews fetches the current reviewer's queue.
func (c *Client) AssignedReviews(ctx context.Context) ([]Assignment, error) {
	var resp envelope[[]Assignment]
	if err := c.Do(ctx, http.MethodGet, "/reviews/assigned", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// PaperReviews fetches the reviews submitted for a paper.
func (c *Client) PaperReviews(ctx context.Context, paperID string) ([]Review, error) {
	var resp envelope[[]Review]
	if err := c.Do(ctx, http.MethodGet, "/papers/"+url.PathEscape(paperID)+"/reviews", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// TriggerAssignment asks the backend to auto-assign pending papers to
// available reviewers.
func (c *Client) TriggerAssignment(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/admin/assign", nil, nil)
}

// ListUsers fetches all accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp envelope[[]User]
	if err := c.Do(ctx, http.MethodGet, "/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Statistics fetches review progress counters for the dashboard.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	var resp envelope[Statistics]
	if err := c.Do(ctx, http.MethodGet, "/statistics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
