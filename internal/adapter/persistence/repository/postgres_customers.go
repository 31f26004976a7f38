package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const customerColumns = `id, tenant_id, name, company, email, phone, notes, type, created_at, updated_at, deleted_at`

func scanCustomer(sc interface{ Scan(...any) error }) (entities.Customer, error) {
	var c entities.Customer
	err := sc.Scan(&c.ID, &c.TenantID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Notes, &c.Type,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return c, err
}

func (r *pgRepo) CreateCustomer(ctx context.Context, c entities.Customer) error {
	_, err := r.exec(ctx, "insert customer", `
		INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.TenantID, c.Name, c.Company, c.Email, c.Phone, c.Notes, string(c.Type), c.CreatedAt, c.UpdatedAt, c.DeletedAt)
	return err
}

func (r *pgRepo) GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *pgRepo) ListCustomers(ctx context.Context, tenantID string, f interfaces.CustomerFilter) ([]entities.Customer, error) {
	w := tenantWhere(tenantID)
	if !f.IncludeDeleted {
		w.clauses = append(w.clauses, "deleted_at IS NULL")
	}
	if f.Type != "" {
		w.add("type = $%d", string(f.Type))
	}
	if f.Search != "" {
		w.add("(name ILIKE $%[1]d OR company ILIKE $%[1]d OR email ILIKE $%[1]d OR phone ILIKE $%[1]d)", "%"+f.Search+"%")
	}
	query, args := paging(`SELECT `+customerColumns+` FROM customers`+w.String()+` ORDER BY name, id`, w.args, f.Limit, f.Offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := []entities.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *pgRepo) UpdateCustomer(ctx context.Context, c entities.Customer) error {
	return r.update(ctx, "update customer", `
		UPDATE customers
		SET name = $3, company = $4, email = $5, phone = $6, notes = $7, type = $8, updated_at = $9, deleted_at = $10
		WHERE tenant_id = $1 AND id = $2`,
		c.TenantID, c.ID, c.Name, c.Company, c.Email, c.Phone, c.Notes, string(c.Type), c.UpdatedAt, c.DeletedAt)
}

const propertyColumns = `id, tenant_id, customer_id, line1, line2, city, state, postal_code, country,
	latitude, longitude, is_primary, created_at, updated_at`

func scanProperty(sc interface{ Scan(...any) error }) (entities.Property, error) {
	var p entities.Property
	a := &p.Address
	err := sc.Scan(&p.ID, &p.TenantID, &p.CustomerID, &a.Line1, &a.Line2, &a.City, &a.State, &a.PostalCode, &a.Country,
		&p.Latitude, &p.Longitude, &p.IsPrimary, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *pgRepo) CreateProperty(ctx context.Context, p entities.Property) error {
	a := p.Address
	_, err := r.exec(ctx, "insert property", `
		INSERT INTO properties (`+propertyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.TenantID, p.CustomerID, a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country,
		p.Latitude, p.Longitude, p.IsPrimary, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *pgRepo) GetProperty(ctx context.Context, tenantID, id string) (entities.Property, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Property{}, nil
	}
	if err != nil {
		return entities.Property{}, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func (r *pgRepo) ListProperties(ctx context.Context, tenantID, customerID string) ([]entities.Property, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+propertyColumns+` FROM properties
		WHERE tenant_id = $1 AND customer_id = $2
		ORDER BY is_primary DESC, created_at, id`, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := []entities.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *pgRepo) UpdateProperty(ctx context.Context, p entities.Property) error {
	a := p.Address
	return r.update(ctx, "update property", `
		UPDATE properties
		SET line1 = $3, line2 = $4, city = $5, state = $6, postal_code = $7, country = $8,
			latitude = $9, longitude = $10, is_primary = $11, updated_at = $12
		WHERE tenant_id = $1 AND id = $2`,
		p.TenantID, p.ID, a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country,
		p.Latitude, p.Longitude, p.IsPrimary, p.UpdatedAt)
}

const equipmentColumns = `id, tenant_id, customer_id, COALESCE(property_id, ''), name, manufacturer, model,
	serial_number, install_date, notes, created_at, updated_at`

func scanEquipment(sc interface{ Scan(...any) error }) (entities.Equipment, error) {
	var e entities.Equipment
	err := sc.Scan(&e.ID, &e.TenantID, &e.CustomerID, &e.PropertyID, &e.Name, &e.Manufacturer, &e.Model,
		&e.SerialNumber, &e.InstallDate, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *pgRepo) CreateEquipment(ctx context.Context, e entities.Equipment) error {
	_, err := r.exec(ctx, "insert equipment", `
		INSERT INTO equipment (id, tenant_id, customer_id, property_id, name, manufacturer, model,
			serial_number, install_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.TenantID, e.CustomerID, nullString(e.PropertyID), e.Name, e.Manufacturer, e.Model,
		e.SerialNumber, e.InstallDate, e.Notes, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *pgRepo) GetEquipment(ctx context.Context, tenantID, id string) (entities.Equipment, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	e, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Equipment{}, nil
	}
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

func (r *pgRepo) ListEquipment(ctx context.Context, tenantID, customerID string) ([]entities.Equipment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+equipmentColumns+` FROM equipment
		WHERE tenant_id = $1 AND customer_id = $2
		ORDER BY created_at, id`, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	out := []entities.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *pgRepo) DeleteEquipment(ctx context.Context, tenantID, id string) error {
	_, err := r.exec(ctx, "delete equipment", `DELETE FROM equipment WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return err
}
