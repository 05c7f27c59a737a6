// Package policy decides whether a principal may mutate a record.
//
// Two rules exist. Owned records (news articles) may be changed by their
// owner or by a superuser. Startup scoped records may be changed by the
// administrator bound to that startup or by a superuser. Unauthenticated
// principals are always denied.
package policy

import (
	policyerrors "go-inova/internal/policy/errors"

	"github.com/google/uuid"
)

// OwnedRecord exposes the principal that created a record. A nil owner means
// the reference was cleared when that principal was deleted.
type OwnedRecord interface {
	OwnerUserID() *uuid.UUID
}

func CanMutateNews(p Principal, article OwnedRecord) bool {
	if p == nil || !p.IsAuthenticated() {
		return false
	}
	if p.IsSuperuser() {
		return true
	}
	if article == nil {
		return false
	}

	owner := article.OwnerUserID()
	if owner == nil || *owner == uuid.Nil {
		return false
	}
	return *owner == p.UserID()
}

func CanMutateStartup(p Principal, startupID uuid.UUID) bool {
	if p == nil || !p.IsAuthenticated() {
		return false
	}
	if p.IsSuperuser() {
		return true
	}

	bound, ok := p.AdministratorStartupID()
	return ok && startupID != uuid.Nil && bound == startupID
}

func AuthorizeNews(p Principal, article OwnedRecord) error {
	return decide(p, CanMutateNews(p, article))
}

func AuthorizeStartup(p Principal, startupID uuid.UUID) error {
	return decide(p, CanMutateStartup(p, startupID))
}

// RequireSuperuser guards catalogue wide operations such as binding
// administrators or deleting principals.
func RequireSuperuser(p Principal) error {
	return decide(p, p != nil && p.IsSuperuser())
}

func decide(p Principal, allowed bool) error {
	if p == nil || !p.IsAuthenticated() {
		return policyerrors.ErrUnauthenticated
	}
	if !allowed {
		return policyerrors.ErrForbidden
	}
	return nil
}
