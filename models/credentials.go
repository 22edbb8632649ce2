package models

type UserId string

type IntoCredentials interface {
	IntoCredentials() Credentials
}

type Identity struct {
	UserId    UserId
	Email     string
	FirstName string
	LastName  string
}

// Credentials describe the actor behind an operation. They are resolved by the
// (excluded) auth layer and threaded explicitly through every usecase: the core
// never reads a global session.
type Credentials struct {
	ActorIdentity Identity
	Role          Role
	// OriginIp is the network address the request came from, kept for the audit trail.
	OriginIp string
}

func (c Credentials) ActorId() *UserId {
	if c.ActorIdentity.UserId == "" {
		return nil
	}
	id := c.ActorIdentity.UserId
	return &id
}

func NewSystemCredentials() Credentials {
	return Credentials{Role: SYSTEM}
}
