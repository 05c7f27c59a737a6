package policy

import "github.com/google/uuid"

// Principal is the minimal view of an identity the authorizer needs.
type Principal interface {
	IsAuthenticated() bool
	IsSuperuser() bool
	UserID() uuid.UUID
	// AdministratorStartupID reports the startup this principal administers.
	AdministratorStartupID() (uuid.UUID, bool)
}

// Actor is the Principal built from a verified access token.
type Actor struct {
	ID        uuid.UUID
	Superuser bool
	StartupID *uuid.UUID
}

func Anonymous() Actor {
	return Actor{}
}

func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil
}

func (a Actor) IsSuperuser() bool {
	return a.IsAuthenticated() && a.Superuser
}

func (a Actor) UserID() uuid.UUID {
	return a.ID
}

func (a Actor) AdministratorStartupID() (uuid.UUID, bool) {
	if !a.IsAuthenticated() || a.StartupID == nil || *a.StartupID == uuid.Nil {
		return uuid.Nil, false
	}
	return *a.StartupID, true
}
