package entity

// ExternalProfile is what an identity provider reports after a completed handshake.
type ExternalProfile struct {
	Provider   string
	ExternalID string
	Email      string
	GivenName  string
	FamilyName string
}
