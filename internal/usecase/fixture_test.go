package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store     *repository.MemoryStore
	activity  *repository.MemoryActivityRepository
	deps      Dependencies
	now       time.Time
	customers *CustomerUseCase
	jobs      *JobUseCase
	estimates *EstimateUseCase
	invoices  *InvoiceUseCase
	history   *ActivityUseCase
}

type option func(d *Dependencies)

func withNotifier(n interfaces.INotifier) option {
	return func(d *Dependencies) { d.Notifier = n }
}

func withActivity(a interfaces.IActivityLogRepository) option {
	return func(d *Dependencies) { d.Activity = a }
}

func newFixture(t *testing.T, gateway interfaces.IPaymentGateway, opts ...option) *fixture {
	t.Helper()
	f := &fixture{
		store:    repository.NewMemoryStore(),
		activity: repository.NewMemoryActivityRepository(),
		now:      testNow,
	}
	f.deps = Dependencies{
		Store:    f.store,
		Activity: f.activity,
		Matrix:   permissions.Default(),
		Logger:   zap.NewNop(),
		Clock:    func() time.Time { return f.now },
	}
	for _, o := range opts {
		o(&f.deps)
	}
	f.customers = NewCustomerUseCase(f.deps)
	f.jobs = NewJobUseCase(f.deps)
	f.estimates = NewEstimateUseCase(f.deps)
	f.invoices = NewInvoiceUseCase(f.deps, gateway)
	f.history = NewActivityUseCase(f.deps)
	return f
}

func as(role tenant.Role) context.Context {
	return asTenant("tenant-a", role)
}

func asTenant(tenantID string, role tenant.Role) context.Context {
	return tenant.WithIdentity(context.Background(), tenant.Identity{
		UserID:   "user-" + string(role),
		TenantID: tenantID,
		Role:     role,
		Email:    string(role) + "@example.com",
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(desc, qty, price string) LineItemInput {
	return LineItemInput{Description: desc, Quantity: dec(qty), UnitPrice: dec(price)}
}

// seedCustomer creates a customer with one primary property in ctx's tenant.
func (f *fixture) seedCustomer(t *testing.T, ctx context.Context) (entities.Customer, entities.Property) {
	t.Helper()
	c, err := f.customers.CreateCustomer(ctx, CustomerInput{Name: "Ada Lovelace", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	p, err := f.customers.CreateProperty(ctx, PropertyInput{
		CustomerID: c.ID,
		Address:    entities.Address{Line1: "12 Analytical Way", City: "London"},
		IsPrimary:  true,
	})
	if err != nil {
		t.Fatalf("create property: %v", err)
	}
	return c, p
}

func (f *fixture) seedJob(t *testing.T, ctx context.Context, lines ...LineItemInput) entities.Job {
	t.Helper()
	c, p := f.seedCustomer(t, ctx)
	j, err := f.jobs.CreateJob(ctx, JobInput{CustomerID: c.ID, PropertyID: p.ID, Title: "Boiler service", LineItems: lines})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return j
}

// seedSentInvoice creates a sent invoice of 100 + 25 at 8% tax: total 135.00.
func (f *fixture) seedSentInvoice(t *testing.T, ctx context.Context, due time.Time) entities.Invoice {
	t.Helper()
	c, _ := f.seedCustomer(t, ctx)
	inv, err := f.invoices.CreateInvoice(ctx, InvoiceInput{
		CustomerID: c.ID,
		DueDate:    due,
		TaxRate:    dec("0.08"),
		LineItems:  []LineItemInput{line("Repair", "1", "100"), line("Parts", "1", "25")},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	inv, err = f.invoices.SendInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("send invoice: %v", err)
	}
	return inv
}

func expectKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("expected %s, got %s (%v)", kind, got, err)
	}
}

func expectMoney(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s: expected %s, got %s", name, want, got.StringFixed(2))
	}
}
