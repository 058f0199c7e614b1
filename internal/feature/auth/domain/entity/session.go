package entity

import "time"

// Session backs a cookie token. The token's jti is the session ID.
type Session struct {
	ID        string     // uuid, equal to the cookie token's jti
	UserID    string     // owning user
	UserAgent string     // client User-Agent header
	IPAddress string     // client IP address
	CreatedAt time.Time  // creation time
	ExpiresAt time.Time  // aligned with the cookie token expiry
	RevokedAt *time.Time // set on logout
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
