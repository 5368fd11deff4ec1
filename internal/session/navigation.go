package session

// NavItem is one navigation entry. Logout entries render as a POST
// affordance instead of a plain link.
type NavItem struct {
	Label  string
	Href   string
	Logout bool
}

// NavItems builds the navigation purely from authentication state and
// role. Unauthenticated users see only the login link. Authenticated
// users see the paper list and logout; admins additionally get the
// dashboard and paper management ahead of those; authors get a
// submission entry.
func (s *Session) NavItems() []NavItem {
	if !s.IsAuthenticated() {
		return []NavItem{{Label: "Login", Href: LoginPath}}
	}

	items := []NavItem{
		{Label: "Papers", Href: PapersPath},
	}

	switch s.CurrentRole() {
	case RoleAdmin:
		items = append([]NavItem{
			{Label: "Dashboard", Href: DashboardPath},
			{Label: "Manage papers", Href: PapersPath},
		}, items...)
	case RoleAuthor:
		items = append(items, NavItem{Label: "Submit paper", Href: PapersPath + "/new"})
	}

	items = append(items, NavItem{Label: "Logout", Href: "/logout", Logout: true})
	return items
}
