package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/finance"
	"fieldops/internal/usecase/interfaces"
)

// ErrReadOnly is returned when a write is attempted through MemoryStore.Read.
var ErrReadOnly = errors.New("repository: write outside transaction")

// memoryState holds document headers only; children live in their own tables and are
// joined on read. Stored values are replaced, never mutated in place, so a
// shallow copy of each map is enough to snapshot the state.
type memoryState struct {
	customers  map[rowKey]entities.Customer
	properties map[rowKey]entities.Property
	equipment  map[rowKey]entities.Equipment
	jobs       map[rowKey]entities.Job
	notes      map[rowKey]entities.JobNote
	photos     map[rowKey]entities.JobPhoto
	signatures map[rowKey]entities.JobSignature
	estimates  map[rowKey]entities.Estimate
	options    map[rowKey]entities.EstimateOption
	invoices   map[rowKey]entities.Invoice
	payments   map[rowKey]entities.Payment
	lines      map[rowKey]entities.LineItem
	sequences  map[rowKey]int64
}

func newMemoryState() memoryState {
	return memoryState{
		customers:  map[rowKey]entities.Customer{},
		properties: map[rowKey]entities.Property{},
		equipment:  map[rowKey]entities.Equipment{},
		jobs:       map[rowKey]entities.Job{},
		notes:      map[rowKey]entities.JobNote{},
		photos:     map[rowKey]entities.JobPhoto{},
		signatures: map[rowKey]entities.JobSignature{},
		estimates:  map[rowKey]entities.Estimate{},
		options:    map[rowKey]entities.EstimateOption{},
		invoices:   map[rowKey]entities.Invoice{},
		payments:   map[rowKey]entities.Payment{},
		lines:      map[rowKey]entities.LineItem{},
		sequences:  map[rowKey]int64{},
	}
}

func copyMap[V any](in map[rowKey]V) map[rowKey]V {
	out := make(map[rowKey]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s memoryState) clone() memoryState {
	return memoryState{
		customers:  copyMap(s.customers),
		properties: copyMap(s.properties),
		equipment:  copyMap(s.equipment),
		jobs:       copyMap(s.jobs),
		notes:      copyMap(s.notes),
		photos:     copyMap(s.photos),
		signatures: copyMap(s.signatures),
		estimates:  copyMap(s.estimates),
		options:    copyMap(s.options),
		invoices:   copyMap(s.invoices),
		payments:   copyMap(s.payments),
		lines:      copyMap(s.lines),
		sequences:  copyMap(s.sequences),
	}
}

// MemoryStore is an in-process IDocumentStore. Transactions run under a single
// writer lock against a cloned state that replaces the live one on success,
// so a failed transaction leaves nothing behind.
type MemoryStore struct {
	mu    sync.RWMutex
	state memoryState
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newMemoryState()}
}

func (s *MemoryStore) Read(ctx context.Context, fn func(r interfaces.IDocumentRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&memoryRepo{st: s.state})
}

func (s *MemoryStore) RunInTx(ctx context.Context, fn func(tx interfaces.IDocumentRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(&memoryRepo{st: working, writable: true}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = working
	return nil
}

type memoryRepo struct {
	st       memoryState
	writable bool
}

var _ interfaces.IDocumentRepository = (*memoryRepo)(nil)

// rowKey is the (tenant_id, id) primary key of every table.
type rowKey struct {
	tenantID string
	id       string
}

func key(tenantID, id string) rowKey { return rowKey{tenantID: tenantID, id: id} }

func (r *memoryRepo) write() error {
	if !r.writable {
		return ErrReadOnly
	}
	return nil
}

// insert stores v under (tenantID, id), refusing duplicates like a primary key would.
func insert[V any](r *memoryRepo, table map[rowKey]V, tenantID, id string, v V) error {
	if err := r.write(); err != nil {
		return err
	}
	k := key(tenantID, id)
	if _, exists := table[k]; exists {
		return ErrDuplicateKey
	}
	table[k] = v
	return nil
}

// replace overwrites an existing row; a missing row is ErrNoRows.
func replace[V any](r *memoryRepo, table map[rowKey]V, tenantID, id string, v V) error {
	if err := r.write(); err != nil {
		return err
	}
	k := key(tenantID, id)
	if _, exists := table[k]; !exists {
		return ErrNoRows
	}
	table[k] = v
	return nil
}

func tenantRows[V any](table map[rowKey]V, tenantID string, keep func(V) bool) []V {
	var out []V
	for k, v := range table {
		if k.tenantID == tenantID && (keep == nil || keep(v)) {
			out = append(out, v)
		}
	}
	return out
}

func page[V any](rows []V, limit, offset int) []V {
	if offset > 0 {
		if offset >= len(rows) {
			return []V{}
		}
		rows = rows[offset:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func (r *memoryRepo) CreateCustomer(_ context.Context, c entities.Customer) error {
	return insert(r, r.st.customers, c.TenantID, c.ID, c)
}

func (r *memoryRepo) GetCustomer(_ context.Context, tenantID, id string) (entities.Customer, error) {
	return r.st.customers[key(tenantID, id)], nil
}

func (r *memoryRepo) ListCustomers(_ context.Context, tenantID string, f interfaces.CustomerFilter) ([]entities.Customer, error) {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := tenantRows(r.st.customers, tenantID, func(c entities.Customer) bool {
		if c.Deleted() && !f.IncludeDeleted {
			return false
		}
		if f.Type != "" && c.Type != f.Type {
			return false
		}
		if search == "" {
			return true
		}
		for _, field := range []string{c.Name, c.Company, c.Email, c.Phone} {
			if strings.Contains(strings.ToLower(field), search) {
				return true
			}
		}
		return false
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return page(out, f.Limit, f.Offset), nil
}

func (r *memoryRepo) UpdateCustomer(_ context.Context, c entities.Customer) error {
	return replace(r, r.st.customers, c.TenantID, c.ID, c)
}

func (r *memoryRepo) CreateProperty(_ context.Context, p entities.Property) error {
	return insert(r, r.st.properties, p.TenantID, p.ID, p)
}

func (r *memoryRepo) GetProperty(_ context.Context, tenantID, id string) (entities.Property, error) {
	return r.st.properties[key(tenantID, id)], nil
}

func (r *memoryRepo) ListProperties(_ context.Context, tenantID, customerID string) ([]entities.Property, error) {
	out := tenantRows(r.st.properties, tenantID, func(p entities.Property) bool { return p.CustomerID == customerID })
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepo) UpdateProperty(_ context.Context, p entities.Property) error {
	return replace(r, r.st.properties, p.TenantID, p.ID, p)
}

func (r *memoryRepo) CreateEquipment(_ context.Context, e entities.Equipment) error {
	return insert(r, r.st.equipment, e.TenantID, e.ID, e)
}

func (r *memoryRepo) GetEquipment(_ context.Context, tenantID, id string) (entities.Equipment, error) {
	return r.st.equipment[key(tenantID, id)], nil
}

func (r *memoryRepo) ListEquipment(_ context.Context, tenantID, customerID string) ([]entities.Equipment, error) {
	out := tenantRows(r.st.equipment, tenantID, func(e entities.Equipment) bool { return e.CustomerID == customerID })
	sort.Slice(out, func(i, j int) bool { return oldestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out, nil
}

func (r *memoryRepo) DeleteEquipment(_ context.Context, tenantID, id string) error {
	if err := r.write(); err != nil {
		return err
	}
	delete(r.st.equipment, key(tenantID, id))
	return nil
}

func (r *memoryRepo) CreateJob(_ context.Context, j entities.Job) error {
	return insert(r, r.st.jobs, j.TenantID, j.ID, jobHeader(j))
}

func jobHeader(j entities.Job) entities.Job {
	j.LineItems, j.Notes, j.Photos, j.Signatures = nil, nil, nil, nil
	return j
}

func (r *memoryRepo) GetJob(_ context.Context, tenantID, id string, _ bool) (entities.Job, error) {
	j, ok := r.st.jobs[key(tenantID, id)]
	if !ok {
		return entities.Job{}, nil
	}
	j.LineItems = r.children(tenantID, entities.LineParentJob, id)
	j.Notes = tenantRows(r.st.notes, tenantID, func(n entities.JobNote) bool { return n.JobID == id })
	j.Photos = tenantRows(r.st.photos, tenantID, func(p entities.JobPhoto) bool { return p.JobID == id })
	j.Signatures = tenantRows(r.st.signatures, tenantID, func(s entities.JobSignature) bool { return s.JobID == id })
	sort.Slice(j.Notes, func(a, b int) bool { return oldestFirst(j.Notes[a].CreatedAt, j.Notes[b].CreatedAt, j.Notes[a].ID, j.Notes[b].ID) })
	sort.Slice(j.Photos, func(a, b int) bool { return oldestFirst(j.Photos[a].CreatedAt, j.Photos[b].CreatedAt, j.Photos[a].ID, j.Photos[b].ID) })
	sort.Slice(j.Signatures, func(a, b int) bool {
		return oldestFirst(j.Signatures[a].CreatedAt, j.Signatures[b].CreatedAt, j.Signatures[a].ID, j.Signatures[b].ID)
	})
	return j, nil
}

func (r *memoryRepo) ListJobs(_ context.Context, tenantID string, f interfaces.JobFilter) ([]entities.Job, error) {
	out := tenantRows(r.st.jobs, tenantID, func(j entities.Job) bool {
		if f.Status != "" && j.Status != f.Status {
			return false
		}
		if f.CustomerID != "" && j.CustomerID != f.CustomerID {
			return false
		}
		if f.AssignedTo != "" && (j.AssignedTo == nil || *j.AssignedTo != f.AssignedTo) {
			return false
		}
		if f.ScheduledFrom != nil && (j.ScheduledStart == nil || j.ScheduledStart.Before(*f.ScheduledFrom)) {
			return false
		}
		if f.ScheduledTo != nil && (j.ScheduledStart == nil || !j.ScheduledStart.Before(*f.ScheduledTo)) {
			return false
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return newerFirst(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	return page(out, f.Limit, f.Offset), nil
}

func newerFirst(a, b int64, idA, idB string) bool {
	if a != b {
		return a > b
	}
	return idA > idB
}

func oldestFirst(a, b time.Time, idA, idB string) bool {
	if !a.Equal(b) {
		return a.Before(b)
	}
	return idA < idB
}

func (r *memoryRepo) UpdateJob(_ context.Context, j entities.Job) error {
	return replace(r, r.st.jobs, j.TenantID, j.ID, jobHeader(j))
}

func (r *memoryRepo) AddJobNote(_ context.Context, n entities.JobNote) error {
	return insert(r, r.st.notes, n.TenantID, n.ID, n)
}

func (r *memoryRepo) AddJobPhoto(_ context.Context, p entities.JobPhoto) error {
	return insert(r, r.st.photos, p.TenantID, p.ID, p)
}

func (r *memoryRepo) AddJobSignature(_ context.Context, s entities.JobSignature) error {
	return insert(r, r.st.signatures, s.TenantID, s.ID, s)
}

func (r *memoryRepo) CreateEstimate(_ context.Context, e entities.Estimate) error {
	e.Options = nil
	return insert(r, r.st.estimates, e.TenantID, e.ID, e)
}

func (r *memoryRepo) GetEstimate(_ context.Context, tenantID, id string, _ bool) (entities.Estimate, error) {
	e, ok := r.st.estimates[key(tenantID, id)]
	if !ok {
		return entities.Estimate{}, nil
	}
	opts := tenantRows(r.st.options, tenantID, func(o entities.EstimateOption) bool { return o.EstimateID == id })
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].SortOrder != opts[j].SortOrder {
			return opts[i].SortOrder < opts[j].SortOrder
		}
		return opts[i].ID < opts[j].ID
	})
	for i := range opts {
		opts[i].LineItems = r.children(tenantID, entities.LineParentEstimateOption, opts[i].ID)
	}
	e.Options = opts
	return e, nil
}

func (r *memoryRepo) ListEstimates(_ context.Context, tenantID string, f interfaces.EstimateFilter) ([]entities.Estimate, error) {
	out := tenantRows(r.st.estimates, tenantID, func(e entities.Estimate) bool {
		if f.Status != "" && e.Status != f.Status {
			return false
		}
		if f.CustomerID != "" && e.CustomerID != f.CustomerID {
			return false
		}
		if f.JobID != "" && (e.JobID == nil || *e.JobID != f.JobID) {
			return false
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return newerFirst(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	return page(out, f.Limit, f.Offset), nil
}

func (r *memoryRepo) UpdateEstimate(_ context.Context, e entities.Estimate) error {
	e.Options = nil
	return replace(r, r.st.estimates, e.TenantID, e.ID, e)
}

func (r *memoryRepo) CreateEstimateOption(_ context.Context, o entities.EstimateOption) error {
	o.LineItems = nil
	return insert(r, r.st.options, o.TenantID, o.ID, o)
}

func (r *memoryRepo) UpdateEstimateOption(_ context.Context, o entities.EstimateOption) error {
	o.LineItems = nil
	return replace(r, r.st.options, o.TenantID, o.ID, o)
}

func (r *memoryRepo) CreateInvoice(_ context.Context, inv entities.Invoice) error {
	inv.LineItems, inv.Payments = nil, nil
	return insert(r, r.st.invoices, inv.TenantID, inv.ID, inv)
}

func (r *memoryRepo) GetInvoice(_ context.Context, tenantID, id string, _ bool) (entities.Invoice, error) {
	inv, ok := r.st.invoices[key(tenantID, id)]
	if !ok {
		return entities.Invoice{}, nil
	}
	inv.LineItems = r.children(tenantID, entities.LineParentInvoice, id)
	return inv, nil
}

func (r *memoryRepo) ListInvoices(_ context.Context, tenantID string, f interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	out := tenantRows(r.st.invoices, tenantID, func(inv entities.Invoice) bool {
		status := inv.Status
		if !f.AsOf.IsZero() {
			status = finance.EffectiveInvoiceStatus(inv, f.AsOf)
		}
		if f.Status != "" && status != f.Status {
			return false
		}
		if f.CustomerID != "" && inv.CustomerID != f.CustomerID {
			return false
		}
		if f.JobID != "" && (inv.JobID == nil || *inv.JobID != f.JobID) {
			return false
		}
		if f.EstimateID != "" && (inv.EstimateID == nil || *inv.EstimateID != f.EstimateID) {
			return false
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return newerFirst(out[i].CreatedAt.UnixNano(), out[j].CreatedAt.UnixNano(), out[i].ID, out[j].ID) })
	return page(out, f.Limit, f.Offset), nil
}

func (r *memoryRepo) UpdateInvoice(_ context.Context, inv entities.Invoice) error {
	inv.LineItems, inv.Payments = nil, nil
	return replace(r, r.st.invoices, inv.TenantID, inv.ID, inv)
}

func (r *memoryRepo) CreatePayment(_ context.Context, p entities.Payment) error {
	return insert(r, r.st.payments, p.TenantID, p.ID, p)
}

func (r *memoryRepo) ListPayments(_ context.Context, tenantID, invoiceID string) ([]entities.Payment, error) {
	out := tenantRows(r.st.payments, tenantID, func(p entities.Payment) bool { return p.InvoiceID == invoiceID })
	sort.Slice(out, func(i, j int) bool { return oldestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out, nil
}

func (r *memoryRepo) AddLineItem(_ context.Context, l entities.LineItem) error {
	return insert(r, r.st.lines, l.TenantID, l.ID, l)
}

func (r *memoryRepo) DeleteLineItem(_ context.Context, tenantID, id string) error {
	if err := r.write(); err != nil {
		return err
	}
	delete(r.st.lines, key(tenantID, id))
	return nil
}

func (r *memoryRepo) children(tenantID string, parent entities.LineParent, parentID string) []entities.LineItem {
	out := tenantRows(r.st.lines, tenantID, func(l entities.LineItem) bool {
		return l.ParentType == parent && l.ParentID == parentID
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return oldestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

func (r *memoryRepo) NextNumber(_ context.Context, tenantID, kind string) (int64, error) {
	if err := r.write(); err != nil {
		return 0, err
	}
	k := key(tenantID, kind)
	r.st.sequences[k]++
	return r.st.sequences[k], nil
}
