package auth

import "time"

// Session is the backend bearer token the admin holds on to.
type Session struct {
	Token string
	// ExpiresAt is when the token stops being sent. Zero means the cookie
	// falls back to the configured session lifetime.
	ExpiresAt time.Time
}

func (s Session) ExpiredAt(t time.Time) bool {
	return !s.ExpiresAt.IsZero() && !t.Before(s.ExpiresAt)
}
