package permissions

import (
	"slices"

	"fieldops/internal/domain/tenant"
)

var (
	cru    = []Action{ActionCreate, ActionRead, ActionUpdate}
	cr     = []Action{ActionCreate, ActionRead}
	ru     = []Action{ActionRead, ActionUpdate}
	read   = []Action{ActionRead}
	manage = []Action{ActionManage}
)

// Default returns the built-in role matrix.
func Default() Matrix {
	return MustMatrix(DefaultGrants())
}

// DefaultGrants returns a fresh copy of the built-in grants, suitable as a base for overrides.
func DefaultGrants() Grants {
	all := make(map[Resource][]Action, len(Resources()))
	for _, r := range Resources() {
		all[r] = manage
	}

	grants := Grants{
		tenant.RoleAdmin: all,
		tenant.RoleOfficeManager: {
			ResourceCustomers:  manage,
			ResourceProperties: manage,
			ResourceEquipment:  manage,
			ResourceJobs:       manage,
			ResourceEstimates:  manage,
			ResourceInvoices:   manage,
			ResourcePayments:   manage,
			ResourceReports:    manage,
			ResourceWebsite:    manage,
			ResourceSettings:   ru,
			ResourceUsers:      read,
		},
		tenant.RoleDispatcher: {
			ResourceCustomers:  cru,
			ResourceProperties: cru,
			ResourceEquipment:  cru,
			ResourceJobs:       manage,
			ResourceEstimates:  read,
			ResourceInvoices:   read,
			ResourcePayments:   read,
			ResourceReports:    read,
			ResourceUsers:      read,
		},
		tenant.RoleCSR: {
			ResourceCustomers:  cru,
			ResourceProperties: cru,
			ResourceEquipment:  cru,
			ResourceJobs:       cru,
			ResourceEstimates:  cru,
			ResourceInvoices:   cru,
			ResourcePayments:   cr,
			ResourceUsers:      read,
		},
		tenant.RoleTechnician: {
			ResourceCustomers:  read,
			ResourceProperties: read,
			ResourceEquipment:  ru,
			ResourceJobs:       ru,
			ResourceEstimates:  cru,
			ResourceInvoices:   cr,
			ResourcePayments:   cr,
		},
	}
	// the action lists above are shared; hand out independent slices
	for _, byResource := range grants {
		for r, acts := range byResource {
			byResource[r] = slices.Clone(acts)
		}
	}
	return grants
}
