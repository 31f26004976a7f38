package interfaces

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/domain/entities"
)

// ErrPrimaryPropertyTaken is returned by property writes that would give a
// customer a second primary property.
var ErrPrimaryPropertyTaken = errors.New("customer already has a primary property")

// Document kinds used for per-tenant number sequences.
const (
	SequenceJob      = "job"
	SequenceEstimate = "estimate"
	SequenceInvoice  = "invoice"
)

type CustomerFilter struct {
	Search         string
	Type           entities.CustomerType
	IncludeDeleted bool
	Limit          int
	Offset         int
}

type JobFilter struct {
	Status        entities.JobStatus
	AssignedTo    string
	CustomerID    string
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	Limit         int
	Offset        int
}

type EstimateFilter struct {
	Status     entities.EstimateStatus
	CustomerID string
	JobID      string
	Limit      int
	Offset     int
}

type InvoiceFilter struct {
	Status entities.InvoiceStatus
	// AsOf, when set, matches Status against the effective status at that
	// instant, so overdue and the open statuses it shadows filter before paging.
	AsOf       time.Time
	CustomerID string
	JobID      string
	EstimateID string
	Limit      int
	Offset     int
}

// IDocumentRepository is the tenant-scoped persistence port for every business document.
//
// Every method filters on tenantID. Getters return a zero value (ID == "")
// when the row does not exist in that tenant. Get* methods with lock=true
// hold a row lock until the surrounding transaction ends.
//
// GetJob, GetEstimate and GetInvoice return the full aggregate (line items,
// options, notes, attachments); List* methods return headers only.
type IDocumentRepository interface {
	CreateCustomer(ctx context.Context, c entities.Customer) error
	GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context, tenantID string, f CustomerFilter) ([]entities.Customer, error)
	UpdateCustomer(ctx context.Context, c entities.Customer) error

	CreateProperty(ctx context.Context, p entities.Property) error
	GetProperty(ctx context.Context, tenantID, id string) (entities.Property, error)
	ListProperties(ctx context.Context, tenantID, customerID string) ([]entities.Property, error)
	UpdateProperty(ctx context.Context, p entities.Property) error

	CreateEquipment(ctx context.Context, e entities.Equipment) error
	GetEquipment(ctx context.Context, tenantID, id string) (entities.Equipment, error)
	ListEquipment(ctx context.Context, tenantID, customerID string) ([]entities.Equipment, error)
	DeleteEquipment(ctx context.Context, tenantID, id string) error

	CreateJob(ctx context.Context, j entities.Job) error
	GetJob(ctx context.Context, tenantID, id string, lock bool) (entities.Job, error)
	ListJobs(ctx context.Context, tenantID string, f JobFilter) ([]entities.Job, error)
	UpdateJob(ctx context.Context, j entities.Job) error
	AddJobNote(ctx context.Context, n entities.JobNote) error
	AddJobPhoto(ctx context.Context, p entities.JobPhoto) error
	AddJobSignature(ctx context.Context, s entities.JobSignature) error

	CreateEstimate(ctx context.Context, e entities.Estimate) error
	GetEstimate(ctx context.Context, tenantID, id string, lock bool) (entities.Estimate, error)
	ListEstimates(ctx context.Context, tenantID string, f EstimateFilter) ([]entities.Estimate, error)
	UpdateEstimate(ctx context.Context, e entities.Estimate) error
	CreateEstimateOption(ctx context.Context, o entities.EstimateOption) error
	UpdateEstimateOption(ctx context.Context, o entities.EstimateOption) error

	CreateInvoice(ctx context.Context, inv entities.Invoice) error
	GetInvoice(ctx context.Context, tenantID, id string, lock bool) (entities.Invoice, error)
	ListInvoices(ctx context.Context, tenantID string, f InvoiceFilter) ([]entities.Invoice, error)
	UpdateInvoice(ctx context.Context, inv entities.Invoice) error

	CreatePayment(ctx context.Context, p entities.Payment) error
	ListPayments(ctx context.Context, tenantID, invoiceID string) ([]entities.Payment, error)

	AddLineItem(ctx context.Context, l entities.LineItem) error
	DeleteLineItem(ctx context.Context, tenantID, id string) error

	// NextNumber allocates the next value of the tenant's sequence for kind, starting at 1.
	NextNumber(ctx context.Context, tenantID, kind string) (int64, error)
}

// IDocumentStore runs repository work either as a plain read or inside one atomic transaction.
type IDocumentStore interface {
	Read(ctx context.Context, fn func(r IDocumentRepository) error) error
	RunInTx(ctx context.Context, fn func(tx IDocumentRepository) error) error
}
