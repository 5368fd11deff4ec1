package session_test

import (
	"testing"

	"reviewdesk/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navFor(t *testing.T, role string) []session.NavItem {
	t.Helper()
	store := session.NewMemoryStore()
	if role != "unauthenticated" {
		store.SetToken(mintToken(t, role))
	}
	return session.New(store).NavItems()
}

func labels(items []session.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestNavItems_Unauthenticated(t *testing.T) {
	items := navFor(t, "unauthenticated")

	require.Len(t, items, 1)
	assert.Equal(t, "Login", items[0].Label)
	assert.Equal(t, session.LoginPath, items[0].Href)
	assert.False(t, items[0].Logout)
}

func TestNavItems_Expert(t *testing.T) {
	items := navFor(t, "EXPERT")

	assert.Equal(t, []string{"Papers", "Logout"}, labels(items))
	assert.True(t, items[len(items)-1].Logout)
}

func TestNavItems_AdminEntriesComeFirst(t *testing.T) {
	items := navFor(t, "ADMIN")

	assert.Equal(t, []string{"Dashboard", "Manage papers", "Papers", "Logout"}, labels(items))
	assert.Equal(t, session.DashboardPath, items[0].Href)
}

func TestNavItems_AuthorSeesSubmitEntry(t *testing.T) {
	items := navFor(t, "AUTHOR")

	assert.Equal(t, []string{"Papers", "Submit paper", "Logout"}, labels(items))
}
