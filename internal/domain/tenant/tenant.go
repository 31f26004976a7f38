// Package tenant carries the identity attached to every lifecycle operation.
//
// The identity is supplied by the external identity provider (a signed bearer token)
// and establishes the isolation boundary: every store query filters on TenantID.
package tenant

import (
	"context"
	"errors"
	"strings"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleOfficeManager Role = "office_manager"
	RoleDispatcher    Role = "dispatcher"
	RoleCSR           Role = "csr"
	RoleTechnician    Role = "technician"
)

// Roles lists every known role in a stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleOfficeManager, RoleDispatcher, RoleCSR, RoleTechnician}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficeManager, RoleDispatcher, RoleCSR, RoleTechnician:
		return true
	}
	return false
}

var (
	ErrMissingIdentity = errors.New("missing identity")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidTenant   = errors.New("invalid tenant id")
)

// tenantSeparators are used to build composite storage keys.
const tenantSeparators = "/#"

// Identity is the (user, tenant, role) triple of the caller.
type Identity struct {
	UserID   string
	TenantID string
	Role     Role
	Email    string
	Name     string
}

// Validate reports whether the identity is usable for domain operations.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.UserID) == "" || strings.TrimSpace(i.TenantID) == "" {
		return ErrMissingIdentity
	}
	if strings.ContainsAny(i.TenantID, tenantSeparators) {
		return ErrInvalidTenant
	}
	if !i.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
