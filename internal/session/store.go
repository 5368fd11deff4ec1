package session

// Store holds the single session credential under a fixed storage key.
// Implementations decide where that key lives (the web layer backs it
// with a cookie; tests use MemoryStore). Absence of a stored credential
// is the unauthenticated state.
type Store interface {
	// Token returns the stored credential and whether one is present.
	Token() (string, bool)
	// SetToken persists the credential, replacing any previous one.
	SetToken(token string)
	// Clear removes the stored credential.
	Clear()
}

// MemoryStore is an in-memory Store for tests and tooling.
type MemoryStore struct {
	token string
	set   bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token() (string, bool) {
	if !m.set || m.token == "" {
		return "", false
	}
	return m.token, true
}

func (m *MemoryStore) SetToken(token string) {
	m.token = token
	m.set = token != ""
}

func (m *MemoryStore) Clear() {
	m.token = ""
	m.set = false
}
