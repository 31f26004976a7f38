package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"fieldops/internal/usecase/interfaces"
)

const (
	uniqueViolation      = "23505"
	onePrimaryConstraint = "properties_one_primary"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore is the IDocumentStore backed by PostgreSQL.
//
// Every statement filters on tenant_id. Get* with lock=true adds FOR UPDATE,
// which only has effect inside RunInTx.
type PostgresStore struct {
	db  *sql.DB
	log *zap.Logger
}

var _ interfaces.IDocumentStore = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{db: db, log: logger}
}

// Read runs fn in a read-only REPEATABLE READ transaction, so a document and
// its children come from one snapshot.
func (s *PostgresStore) Read(ctx context.Context, fn func(r interfaces.IDocumentRepository) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin read transaction: %w", err)
	}
	defer s.rollback(tx)

	if err := fn(&pgRepo{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit read transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		s.log.Warn("rollback failed", zap.Error(err))
	}
}

func (s *PostgresStore) RunInTx(ctx context.Context, fn func(tx interfaces.IDocumentRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer s.rollback(tx)

	if err := fn(&pgRepo{q: tx, inTx: true}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type pgRepo struct {
	q    queryer
	inTx bool
}

var _ interfaces.IDocumentRepository = (*pgRepo)(nil)

func (r *pgRepo) forUpdate(lock bool) string {
	if lock && r.inTx {
		return " FOR UPDATE"
	}
	return ""
}

// exec runs a write and maps a unique violation to ErrDuplicateKey.
func (r *pgRepo) exec(ctx context.Context, op, query string, args ...any) (sql.Result, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if pqErr.Constraint == onePrimaryConstraint {
				return nil, fmt.Errorf("%s: %w", op, interfaces.ErrPrimaryPropertyTaken)
			}
			return nil, fmt.Errorf("%s: %w", op, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// update is exec for statements that must hit exactly one row.
func (r *pgRepo) update(ctx context.Context, op, query string, args ...any) error {
	res, err := r.exec(ctx, op, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoRows)
	}
	return nil
}

// paging appends LIMIT/OFFSET placeholders.
func paging(query string, args []any, limit, offset int) (string, []any) {
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

// where accumulates tenant-scoped filters with positional placeholders.
type where struct {
	clauses []string
	args    []any
}

func tenantWhere(tenantID string) *where {
	return &where{clauses: []string{"tenant_id = $1"}, args: []any{tenantID}}
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *where) String() string { return " WHERE " + strings.Join(w.clauses, " AND ") }

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// jsonText passes JSON to a jsonb column as text; []byte would be sent as bytea.
func jsonText(raw []byte) *string {
	if len(raw) == 0 {
		return nil
	}
	s := string(raw)
	return &s
}
