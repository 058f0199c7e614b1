// Package entity defines the community message entities.
package entity

import "time"

// Author is the public summary of a message's author.
type Author struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
}

// Message is a post on the community wall.
type Message struct {
	ID       string
	AuthorID string
	// Author is nil when the account no longer exists.
	Author   *Author
	Text     string
	Time     time.Time
	ImageURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether userID wrote the message.
func (m *Message) OwnedBy(userID string) bool {
	return m.AuthorID == userID
}
