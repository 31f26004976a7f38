package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/domain/tenant"
	"fieldops/internal/usecase/interfaces"
)

// Dependencies is shared by every lifecycle use case. Store and Matrix are
// required; the rest fall back to no-op implementations.
type Dependencies struct {
	Store    interfaces.IDocumentStore
	Activity interfaces.IActivityLogRepository
	Notifier interfaces.INotifier
	Matrix   permissions.Matrix
	Logger   *zap.Logger
	Clock    func() time.Time
}

type lifecycle struct {
	store    interfaces.IDocumentStore
	activity interfaces.IActivityLogRepository
	notifier interfaces.INotifier
	matrix   permissions.Matrix
	log      *zap.Logger
	clock    func() time.Time
	newID    func() string
}

func newLifecycle(d Dependencies) lifecycle {
	l := lifecycle{
		store:    d.Store,
		activity: d.Activity,
		notifier: d.Notifier,
		matrix:   d.Matrix,
		log:      d.Logger,
		clock:    d.Clock,
		newID:    uuid.NewString,
	}
	if l.log == nil {
		l.log = zap.NewNop()
	}
	if l.clock == nil {
		l.clock = func() time.Time { return time.Now().UTC() }
	}
	return l
}

func (l *lifecycle) now() time.Time { return l.clock().UTC() }

// identity returns the caller or UNAUTHORIZED.
func (l *lifecycle) identity(ctx context.Context) (tenant.Identity, error) {
	id, ok := tenant.FromContext(ctx)
	if !ok {
		return tenant.Identity{}, &Error{Kind: KindUnauthorized, Message: "missing identity", Err: tenant.ErrMissingIdentity}
	}
	if err := id.Validate(); err != nil {
		return tenant.Identity{}, classify("identity", err)
	}
	return id, nil
}

func (l *lifecycle) authorize(id tenant.Identity, res permissions.Resource, act permissions.Action) error {
	if err := l.matrix.Assert(id, res, act); err != nil {
		l.log.Info("permission denied",
			zap.String("tenant_id", id.TenantID),
			zap.String("user_id", id.UserID),
			zap.String("role", string(id.Role)),
			zap.String("resource", string(res)),
			zap.String("action", string(act)),
		)
		return classify("authorize", err)
	}
	return nil
}

// begin runs the identity and permission checks of an operation that does not target an existing row.
func (l *lifecycle) begin(ctx context.Context, res permissions.Resource, act permissions.Action) (tenant.Identity, error) {
	id, err := l.identity(ctx)
	if err != nil {
		return tenant.Identity{}, err
	}
	if err := l.authorize(id, res, act); err != nil {
		return tenant.Identity{}, err
	}
	return id, nil
}

// beginOn runs identity, the existence probe and then the permission check, in that order:
// a missing row is NOT_FOUND even for callers who could not act on it.
func (l *lifecycle) beginOn(
	ctx context.Context,
	res permissions.Resource,
	act permissions.Action,
	exists func(r interfaces.IDocumentRepository, tenantID string) (bool, error),
	notFound *Error,
) (tenant.Identity, error) {
	id, err := l.identity(ctx)
	if err != nil {
		return tenant.Identity{}, err
	}
	var found bool
	err = l.store.Read(ctx, func(r interfaces.IDocumentRepository) error {
		var err error
		found, err = exists(r, id.TenantID)
		return err
	})
	if err != nil {
		return tenant.Identity{}, l.fail("existence probe", id, err)
	}
	if !found {
		return tenant.Identity{}, notFound
	}
	if err := l.authorize(id, res, act); err != nil {
		return tenant.Identity{}, err
	}
	return id, nil
}

// tx runs fn in one store transaction and classifies its error.
func (l *lifecycle) tx(ctx context.Context, op string, id tenant.Identity, fn func(tx interfaces.IDocumentRepository) error) error {
	if err := l.store.RunInTx(ctx, fn); err != nil {
		return l.fail(op, id, err)
	}
	return nil
}

func (l *lifecycle) read(ctx context.Context, op string, id tenant.Identity, fn func(r interfaces.IDocumentRepository) error) error {
	if err := l.store.Read(ctx, fn); err != nil {
		return l.fail(op, id, err)
	}
	return nil
}

func (l *lifecycle) fail(op string, id tenant.Identity, err error) error {
	classified := classify(op, err)
	if KindOf(classified) == KindInternal {
		l.log.Error("lifecycle operation failed",
			zap.String("op", op),
			zap.String("tenant_id", id.TenantID),
			zap.String("user_id", id.UserID),
			zap.Error(err),
		)
	}
	return classified
}

// record appends to the activity log after commit. Failures are logged and swallowed.
func (l *lifecycle) record(ctx context.Context, id tenant.Identity, entityType entities.EntityType, entityID, action string, detail map[string]string) {
	if l.activity == nil {
		return
	}
	entry := entities.ActivityLogEntry{
		ID:          l.newID(),
		TenantID:    id.TenantID,
		ActorUserID: id.UserID,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Detail:      detail,
		CreatedAt:   l.now(),
	}
	if err := l.activity.Append(ctx, entry); err != nil {
		l.log.Warn("activity log append failed",
			zap.String("tenant_id", id.TenantID),
			zap.String("entity_type", string(entityType)),
			zap.String("entity_id", entityID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// notify hands n to the notifier after commit. Failures are logged and swallowed.
func (l *lifecycle) notify(ctx context.Context, n interfaces.Notification) {
	if l.notifier == nil {
		return
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = l.now()
	}
	if err := l.notifier.Notify(ctx, n); err != nil {
		l.log.Warn("notification failed",
			zap.String("tenant_id", n.TenantID),
			zap.String("kind", n.Kind),
			zap.String("entity_id", n.EntityID),
			zap.Error(err),
		)
	}
}

// nextNumber formats the next document number of kind, e.g. JOB-000042.
func nextNumber(ctx context.Context, tx interfaces.IDocumentRepository, tenantID, kind, prefix string) (string, error) {
	n, err := tx.NextNumber(ctx, tenantID, kind)
	if err != nil {
		return "", fmt.Errorf("allocate %s number: %w", kind, err)
	}
	return fmt.Sprintf("%s-%06d", prefix, n), nil
}

// activeCustomer loads the customer that will own a new document.
func activeCustomer(ctx context.Context, r interfaces.IDocumentRepository, tenantID, customerID string) (entities.Customer, error) {
	c, err := r.GetCustomer(ctx, tenantID, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	if c.Deleted() {
		return entities.Customer{}, ErrCustomerDeleted
	}
	return c, nil
}
