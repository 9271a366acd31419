package models

// Flash is a one-shot message surfaced on the next rendered page and then
// discarded.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"` // "success" or "error"
}

// Session is the per-browser-client state persisted in the session store.
// It holds at most one identity plus the pending flash queue. The canonical
// identity key is user_id.
type Session struct {
	ID       string  `json:"-"`
	UserID   int64   `json:"user_id,omitempty"`
	Username string  `json:"username,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

// LoggedIn reports whether the session carries an identity.
func (s *Session) LoggedIn() bool {
	return s.UserID != 0
}

// Flash appends a one-shot message to the session's flash queue.
func (s *Session) Flash(message, category string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Category: category})
}

// ConsumeFlashes returns the pending flash messages and clears the queue.
func (s *Session) ConsumeFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// ClearIdentity removes the identity from the session. Clearing an already
// anonymous session is a no-op.
func (s *Session) ClearIdentity() {
	s.UserID = 0
	s.Username = ""
}
