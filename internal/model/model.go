// Package model defines persisted entities managed by the lifecycle engine.
package model

import "time"

// Envelope carries the identity and audit fields shared by every persisted
// record. ID is assigned at most once, just before the first durable write;
// CreatedDate and ModifiedDate are maintained by the storage layer (set on
// first write, ModifiedDate refreshed on every write).
type Envelope struct {
	ID           string
	CreatedBy    string
	CreatedDate  time.Time
	ModifiedBy   string
	ModifiedDate time.Time
}

// UserInfo is a stored user account. Password holds the encoded hash,
// never the plaintext.
type UserInfo struct {
	Envelope

	Username    string
	Password    string
	FirstName   string
	LastName    string
	Nickname    string
	Status      string
	DateOfBirth Date
}

// Env exposes the embedded envelope to the generic engine.
func (u *UserInfo) Env() *Envelope { return &u.Envelope }
