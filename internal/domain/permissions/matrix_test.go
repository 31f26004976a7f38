package permissions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fieldops/internal/domain/tenant"
)

func TestDefault_CoversEveryRoleAndResource(t *testing.T) {
	m := Default()
	for _, res := range Resources() {
		for _, a := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage} {
			if !m.HasPermission(tenant.RoleAdmin, res, a) {
				t.Fatalf("admin must be able to %s %s", a, res)
			}
		}
	}
	if len(Resources()) != 11 {
		t.Fatalf("expected 11 resources, got %d", len(Resources()))
	}
}

func TestDefault_SelectedEntries(t *testing.T) {
	m := Default()
	cases := []struct {
		role   tenant.Role
		res    Resource
		action Action
		want   bool
	}{
		{tenant.RoleDispatcher, ResourceJobs, ActionManage, true},
		{tenant.RoleDispatcher, ResourceJobs, ActionDelete, true},
		{tenant.RoleDispatcher, ResourceInvoices, ActionUpdate, false},
		{tenant.RoleCSR, ResourceInvoices, ActionCreate, true},
		{tenant.RoleCSR, ResourceInvoices, ActionDelete, false},
		{tenant.RoleCSR, ResourceJobs, ActionManage, false},
		{tenant.RoleTechnician, ResourceJobs, ActionUpdate, true},
		{tenant.RoleTechnician, ResourceJobs, ActionManage, false},
		{tenant.RoleTechnician, ResourceCustomers, ActionCreate, false},
		{tenant.RoleTechnician, ResourcePayments, ActionCreate, true},
		{tenant.RoleTechnician, ResourceReports, ActionRead, false},
		{tenant.RoleOfficeManager, ResourceSettings, ActionDelete, false},
		{tenant.RoleOfficeManager, ResourceInvoices, ActionDelete, true},
		{"owner", ResourceJobs, ActionRead, false},
	}

	for _, tc := range cases {
		if got := m.HasPermission(tc.role, tc.res, tc.action); got != tc.want {
			t.Fatalf("%s %s %s: expected %v, got %v", tc.role, tc.action, tc.res, tc.want, got)
		}
	}
}

func TestMatrix_ManageImpliesAll(t *testing.T) {
	m := MustMatrix(Grants{tenant.RoleCSR: {ResourceJobs: {ActionManage}}})
	for _, a := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete} {
		if !m.HasPermission(tenant.RoleCSR, ResourceJobs, a) {
			t.Fatalf("manage must imply %s", a)
		}
	}
	if m.HasPermission(tenant.RoleCSR, ResourceInvoices, ActionRead) {
		t.Fatalf("manage on jobs must not leak to invoices")
	}
}

func TestMatrix_ZeroValueDenies(t *testing.T) {
	var m Matrix
	if m.HasPermission(tenant.RoleAdmin, ResourceJobs, ActionRead) {
		t.Fatalf("zero matrix must deny")
	}
}

func TestMatrix_Assert(t *testing.T) {
	m := Default()
	id := tenant.Identity{UserID: "u", TenantID: "t", Role: tenant.RoleTechnician}

	if err := m.Assert(id, ResourceJobs, ActionRead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := m.Assert(id, ResourceInvoices, ActionDelete)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNewMatrix_RejectsUnknownEntries(t *testing.T) {
	if _, err := NewMatrix(Grants{"owner": {ResourceJobs: {ActionRead}}}); err == nil {
		t.Fatalf("expected unknown role error")
	}
	if _, err := NewMatrix(Grants{tenant.RoleCSR: {"boats": {ActionRead}}}); err == nil {
		t.Fatalf("expected unknown resource error")
	}
	if _, err := NewMatrix(Grants{tenant.RoleCSR: {ResourceJobs: {"fly"}}}); err == nil {
		t.Fatalf("expected unknown action error")
	}
}

func TestMatrix_Describe(t *testing.T) {
	m := MustMatrix(Grants{tenant.RoleTechnician: {ResourceJobs: {ActionRead, ActionUpdate}, ResourceInvoices: {ActionManage}}})
	d := m.Describe()

	jobs := d[tenant.RoleTechnician][ResourceJobs]
	if len(jobs) != 2 || jobs[0] != ActionRead || jobs[1] != ActionUpdate {
		t.Fatalf("unexpected jobs actions: %v", jobs)
	}
	if got := d[tenant.RoleTechnician][ResourceInvoices]; len(got) != 5 {
		t.Fatalf("manage should expand to 5 actions, got %v", got)
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
roles:
  technician:
    jobs: [read, update]
  admin:
    jobs: [manage]
`)
	m, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.HasPermission(tenant.RoleTechnician, ResourceJobs, ActionUpdate) {
		t.Fatalf("expected technician jobs update")
	}
	if m.HasPermission(tenant.RoleTechnician, ResourceInvoices, ActionRead) {
		t.Fatalf("resources absent from the file must be denied")
	}
	if !m.HasPermission(tenant.RoleAdmin, ResourceJobs, ActionDelete) {
		t.Fatalf("expected admin manage to imply delete")
	}

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := ParseYAML([]byte("roles: [")); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ParseYAML([]byte("roles: {}")); err == nil {
			t.Fatalf("expected error for empty roles")
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		if _, err := ParseYAML([]byte("roles:\n  csr:\n    jobs: [fly]\n")); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	if err := os.WriteFile(path, []byte("roles:\n  csr:\n    customers: [read]\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.HasPermission(tenant.RoleCSR, ResourceCustomers, ActionRead) {
		t.Fatalf("expected csr customers read")
	}

	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultGrants_IndependentCopies(t *testing.T) {
	g := DefaultGrants()
	g[tenant.RoleDispatcher][ResourceCustomers][0] = ActionManage
	g[tenant.RoleAdmin][ResourceUsers][0] = ActionRead

	m := Default()
	if m.HasPermission(tenant.RoleCSR, ResourceCustomers, ActionDelete) {
		t.Fatalf("editing one grant list leaked into another role")
	}
	if !m.HasPermission(tenant.RoleAdmin, ResourceSettings, ActionDelete) {
		t.Fatalf("editing admin users leaked into admin settings")
	}
	if again := DefaultGrants(); again[tenant.RoleDispatcher][ResourceCustomers][0] != ActionCreate {
		t.Fatalf("expected a fresh copy, got %v", again[tenant.RoleDispatcher][ResourceCustomers])
	}
}
