package session

// Guard gates entry to the authenticated part of the workflow. It is a pure
// presence check: a credential's authenticity and expiry are the server's
// responsibility on each API call.
type Guard struct {
	store *Store
}

func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Allow returns true iff a credential is present. A false answer means the
// caller must be sent to the unauthenticated entry point (the login flow).
func (g *Guard) Allow() bool {
	return g.store.Current() != ""
}
