package session

// Paths the session layer redirects between. The landing decision after
// login is the single place role picks the initial view.
const (
	LoginPath     = "/login"
	PapersPath    = "/papers"
	DashboardPath = "/dashboard"
)

// Session is the explicit per-request session context. It wraps a Store
// and derives authentication state and permissions from the credential
// it holds. State is evaluated on demand against the store; the web
// layer builds one Session per page load.
type Session struct {
	store Store
}

// New creates a session context over the given store.
func New(store Store) *Session {
	return &Session{store: store}
}

// Token exposes the raw credential for the backend client's bearer
// header. Satisfies backend.TokenSource.
func (s *Session) Token() (string, bool) {
	return s.store.Token()
}

// IsAuthenticated reports whether a credential is present. Presence is
// the whole test: a malformed credential still counts as authenticated
// here and only degrades at role checks.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.store.Token()
	return ok
}

// CurrentRole decodes the role claim from the stored credential.
// Returns RoleNone on absence or any decode failure; never fails
// outward. A decode failure deliberately leaves the stored credential
// in place, matching the fail-safe of degrading to the login view
// instead of raising.
func (s *Session) CurrentRole() Role {
	token, ok := s.store.Token()
	if !ok {
		return RoleNone
	}
	return DecodeRole(token)
}

// HasPermission reports whether the current role satisfies the
// requirement. Admin is a superset of every role; any other role must
// match exactly; no role means no permission.
func (s *Session) HasPermission(required Role) bool {
	role := s.CurrentRole()
	if role == RoleNone {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	return role == required
}

// Login persists the credential. The caller redirects to LandingPath
// afterwards.
func (s *Session) Login(credential string) {
	s.store.SetToken(credential)
}

// Logout clears the stored credential. No backend invalidation call is
// made; the token is trusted to expire or be revoked server-side.
func (s *Session) Logout() {
	s.store.Clear()
}

// LandingPath returns the view a freshly logged-in user lands on:
// dashboard for admins, the paper list for everyone else.
func (s *Session) LandingPath() string {
	if s.CurrentRole() == RoleAdmin {
		return DashboardPath
	}
	return PapersPath
}
