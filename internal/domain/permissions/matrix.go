package permissions

import (
	"errors"
	"fmt"

	"fieldops/internal/domain/tenant"
)

type Resource string

const (
	ResourceCustomers  Resource = "customers"
	ResourceProperties Resource = "properties"
	ResourceEquipment  Resource = "equipment"
	ResourceJobs       Resource = "jobs"
	ResourceEstimates  Resource = "estimates"
	ResourceInvoices   Resource = "invoices"
	ResourcePayments   Resource = "payments"
	ResourceUsers      Resource = "users"
	ResourceSettings   Resource = "settings"
	ResourceReports    Resource = "reports"
	ResourceWebsite    Resource = "website"
)

// Resources lists the resource classes covered by the matrix.
func Resources() []Resource {
	return []Resource{
		ResourceCustomers, ResourceProperties, ResourceEquipment, ResourceJobs, ResourceEstimates,
		ResourceInvoices, ResourcePayments, ResourceUsers, ResourceSettings, ResourceReports, ResourceWebsite,
	}
}

func (r Resource) Valid() bool {
	for _, known := range Resources() {
		if r == known {
			return true
		}
	}
	return false
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionManage implies every other action on the resource.
	ActionManage Action = "manage"
)

func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage:
		return true
	}
	return false
}

var ErrForbidden = errors.New("forbidden")

type actionSet uint8

const (
	bitCreate actionSet = 1 << iota
	bitRead
	bitUpdate
	bitDelete
	bitManage
)

func bitFor(a Action) actionSet {
	switch a {
	case ActionCreate:
		return bitCreate
	case ActionRead:
		return bitRead
	case ActionUpdate:
		return bitUpdate
	case ActionDelete:
		return bitDelete
	case ActionManage:
		return bitManage
	}
	return 0
}

func (s actionSet) allows(a Action) bool {
	if s&bitManage != 0 {
		return true
	}
	b := bitFor(a)
	return b != 0 && s&b != 0
}

// Grants is the builder form of a matrix: role -> resource -> granted actions.
type Grants map[tenant.Role]map[Resource][]Action

// Matrix is an immutable (role, resource, action) table. The zero value denies everything.
// It is passed by value into the use cases; there are no mutators.
type Matrix struct {
	table map[tenant.Role]map[Resource]actionSet
}

// NewMatrix validates grants and builds a Matrix. The grants map is copied.
func NewMatrix(grants Grants) (Matrix, error) {
	table := make(map[tenant.Role]map[Resource]actionSet, len(grants))
	for role, resources := range grants {
		if !role.Valid() {
			return Matrix{}, fmt.Errorf("unknown role %q", role)
		}
		row := make(map[Resource]actionSet, len(resources))
		for res, actions := range resources {
			if !res.Valid() {
				return Matrix{}, fmt.Errorf("unknown resource %q for role %q", res, role)
			}
			var set actionSet
			for _, a := range actions {
				if !a.Valid() {
					return Matrix{}, fmt.Errorf("unknown action %q for %s/%s", a, role, res)
				}
				set |= bitFor(a)
			}
			row[res] = set
		}
		table[role] = row
	}
	return Matrix{table: table}, nil
}

// MustMatrix is NewMatrix for static tables; it panics on invalid input.
func MustMatrix(grants Grants) Matrix {
	m, err := NewMatrix(grants)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Matrix) HasPermission(role tenant.Role, resource Resource, action Action) bool {
	row, ok := m.table[role]
	if !ok {
		return false
	}
	return row[resource].allows(action)
}

// Assert returns an error wrapping ErrForbidden when the identity's role lacks the permission.
func (m Matrix) Assert(id tenant.Identity, resource Resource, action Action) error {
	if m.HasPermission(id.Role, resource, action) {
		return nil
	}
	return fmt.Errorf("%w: role %s cannot %s %s", ErrForbidden, id.Role, action, resource)
}

// Describe expands the matrix into explicit actions per role and resource.
// manage is reported as the full action list.
func (m Matrix) Describe() map[tenant.Role]map[Resource][]Action {
	all := []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
	out := make(map[tenant.Role]map[Resource][]Action, len(m.table))
	for role, row := range m.table {
		described := make(map[Resource][]Action, len(row))
		for res, set := range row {
			var actions []Action
			for _, a := range all {
				if set.allows(a) {
					actions = append(actions, a)
				}
			}
			if set&bitManage != 0 {
				actions = append(actions, ActionManage)
			}
			if len(actions) > 0 {
				described[res] = actions
			}
		}
		out[role] = described
	}
	return out
}
