package usecase

import (
	"context"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/usecase/interfaces"
)

type CustomerInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Notes   string
	Type    entities.CustomerType
}

// CustomerPatch carries the fields to change; nil fields are left as they are.
type CustomerPatch struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Notes   *string
	Type    *entities.CustomerType
}

type PropertyInput struct {
	CustomerID string
	Address    entities.Address
	Latitude   *float64
	Longitude  *float64
	IsPrimary  bool
}

type EquipmentInput struct {
	CustomerID   string
	PropertyID   string
	Name         string
	Manufacturer string
	Model        string
	SerialNumber string
	InstallDate  *time.Time
	Notes        string
}

// ICustomerUseCase manages customers and the properties and equipment they own.
type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error)
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context, f interfaces.CustomerFilter) ([]entities.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	CreateProperty(ctx context.Context, in PropertyInput) (entities.Property, error)
	ListProperties(ctx context.Context, customerID string) ([]entities.Property, error)
	SetPrimaryProperty(ctx context.Context, propertyID string) (entities.Property, error)

	CreateEquipment(ctx context.Context, in EquipmentInput) (entities.Equipment, error)
	ListEquipment(ctx context.Context, customerID string) ([]entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	lifecycle
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(d Dependencies) *CustomerUseCase {
	return &CustomerUseCase{lifecycle: newLifecycle(d)}
}

func liveCustomer(ctx context.Context, id string) func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
	return func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
		c, err := r.GetCustomer(ctx, tenantID, id)
		return c.ID != "" && !c.Deleted(), err
	}
}

func validateCustomer(name string, typ entities.CustomerType) error {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "required"
	}
	if !typ.Valid() {
		fields["type"] = "must be residential or commercial"
	}
	if len(fields) > 0 {
		return invalid(fields)
	}
	return nil
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	id, err := u.begin(ctx, permissions.ResourceCustomers, permissions.ActionCreate)
	if err != nil {
		return entities.Customer{}, err
	}
	if in.Type == "" {
		in.Type = entities.CustomerTypeResidential
	}
	if err := validateCustomer(in.Name, in.Type); err != nil {
		return entities.Customer{}, err
	}

	now := u.now()
	c := entities.Customer{
		ID:        u.newID(),
		TenantID:  id.TenantID,
		Name:      strings.TrimSpace(in.Name),
		Company:   in.Company,
		Email:     strings.TrimSpace(in.Email),
		Phone:     in.Phone,
		Notes:     in.Notes,
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = u.tx(ctx, "create customer", id, func(tx interfaces.IDocumentRepository) error {
		return tx.CreateCustomer(ctx, c)
	})
	if err != nil {
		return entities.Customer{}, err
	}
	u.record(ctx, id, entities.EntityCustomer, c.ID, "created", map[string]string{"name": c.Name})
	return c, nil
}

func (u *CustomerUseCase) GetCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	var c entities.Customer
	err = u.read(ctx, "get customer", id, func(r interfaces.IDocumentRepository) error {
		var err error
		c, err = r.GetCustomer(ctx, id.TenantID, customerID)
		return err
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" || c.Deleted() {
		return entities.Customer{}, ErrCustomerNotFound
	}
	if err := u.authorize(id, permissions.ResourceCustomers, permissions.ActionRead); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (u *CustomerUseCase) ListCustomers(ctx context.Context, f interfaces.CustomerFilter) ([]entities.Customer, error) {
	id, err := u.begin(ctx, permissions.ResourceCustomers, permissions.ActionRead)
	if err != nil {
		return nil, err
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, invalidField("type", "must be residential or commercial")
	}
	var out []entities.Customer
	err = u.read(ctx, "list customers", id, func(r interfaces.IDocumentRepository) error {
		var err error
		out, err = r.ListCustomers(ctx, id.TenantID, f)
		return err
	})
	return out, err
}

func (u *CustomerUseCase) UpdateCustomer(ctx context.Context, customerID string, patch CustomerPatch) (entities.Customer, error) {
	id, err := u.beginOn(ctx, permissions.ResourceCustomers, permissions.ActionUpdate, liveCustomer(ctx, customerID), ErrCustomerNotFound)
	if err != nil {
		return entities.Customer{}, err
	}

	var c entities.Customer
	err = u.tx(ctx, "update customer", id, func(tx interfaces.IDocumentRepository) error {
		var err error
		c, err = tx.GetCustomer(ctx, id.TenantID, customerID)
		if err != nil {
			return err
		}
		if c.ID == "" || c.Deleted() {
			return ErrCustomerNotFound
		}
		applyCustomerPatch(&c, patch)
		if err := validateCustomer(c.Name, c.Type); err != nil {
			return err
		}
		c.UpdatedAt = u.now()
		return tx.UpdateCustomer(ctx, c)
	})
	if err != nil {
		return entities.Customer{}, err
	}
	u.record(ctx, id, entities.EntityCustomer, c.ID, "updated", nil)
	return c, nil
}

func applyCustomerPatch(c *entities.Customer, p CustomerPatch) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
}

// DeleteCustomer writes a tombstone; documents keep pointing at the customer.
func (u *CustomerUseCase) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := u.beginOn(ctx, permissions.ResourceCustomers, permissions.ActionDelete, liveCustomer(ctx, customerID), ErrCustomerNotFound)
	if err != nil {
		return err
	}
	err = u.tx(ctx, "delete customer", id, func(tx interfaces.IDocumentRepository) error {
		c, err := tx.GetCustomer(ctx, id.TenantID, customerID)
		if err != nil {
			return err
		}
		if c.ID == "" || c.Deleted() {
			return ErrCustomerNotFound
		}
		now := u.now()
		c.DeletedAt = &now
		c.UpdatedAt = now
		return tx.UpdateCustomer(ctx, c)
	})
	if err != nil {
		return err
	}
	u.record(ctx, id, entities.EntityCustomer, customerID, "deleted", nil)
	return nil
}

func (u *CustomerUseCase) CreateProperty(ctx context.Context, in PropertyInput) (entities.Property, error) {
	id, err := u.begin(ctx, permissions.ResourceProperties, permissions.ActionCreate)
	if err != nil {
		return entities.Property{}, err
	}
	if err := validateAddress(in.Address); err != nil {
		return entities.Property{}, err
	}

	now := u.now()
	p := entities.Property{
		ID:         u.newID(),
		TenantID:   id.TenantID,
		CustomerID: in.CustomerID,
		Address:    in.Address,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		IsPrimary:  in.IsPrimary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = u.tx(ctx, "create property", id, func(tx interfaces.IDocumentRepository) error {
		if _, err := activeCustomer(ctx, tx, id.TenantID, in.CustomerID); err != nil {
			return err
		}
		if p.IsPrimary {
			existing, err := tx.ListProperties(ctx, id.TenantID, in.CustomerID)
			if err != nil {
				return err
			}
			for _, e := range existing {
				if e.IsPrimary {
					return ErrDuplicatePrimary
				}
			}
		}
		return tx.CreateProperty(ctx, p)
	})
	if err != nil {
		return entities.Property{}, err
	}
	u.record(ctx, id, entities.EntityProperty, p.ID, "created", map[string]string{"customer_id": p.CustomerID})
	return p, nil
}

func validateAddress(a entities.Address) error {
	fields := map[string]string{}
	if strings.TrimSpace(a.Line1) == "" {
		fields["address.line1"] = "required"
	}
	if strings.TrimSpace(a.City) == "" {
		fields["address.city"] = "required"
	}
	if len(fields) > 0 {
		return invalid(fields)
	}
	return nil
}

func (u *CustomerUseCase) ListProperties(ctx context.Context, customerID string) ([]entities.Property, error) {
	id, err := u.beginOn(ctx, permissions.ResourceProperties, permissions.ActionRead, liveCustomer(ctx, customerID), ErrCustomerNotFound)
	if err != nil {
		return nil, err
	}
	var out []entities.Property
	err = u.read(ctx, "list properties", id, func(r interfaces.IDocumentRepository) error {
		var err error
		out, err = r.ListProperties(ctx, id.TenantID, customerID)
		return err
	})
	return out, err
}

// SetPrimaryProperty demotes the customer's current primary and promotes propertyID in one transaction.
func (u *CustomerUseCase) SetPrimaryProperty(ctx context.Context, propertyID string) (entities.Property, error) {
	exists := func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
		p, err := r.GetProperty(ctx, tenantID, propertyID)
		return p.ID != "", err
	}
	id, err := u.beginOn(ctx, permissions.ResourceProperties, permissions.ActionUpdate, exists, ErrPropertyNotFound)
	if err != nil {
		return entities.Property{}, err
	}

	var target entities.Property
	err = u.tx(ctx, "set primary property", id, func(tx interfaces.IDocumentRepository) error {
		var err error
		target, err = tx.GetProperty(ctx, id.TenantID, propertyID)
		if err != nil {
			return err
		}
		if target.ID == "" {
			return ErrPropertyNotFound
		}
		siblings, err := tx.ListProperties(ctx, id.TenantID, target.CustomerID)
		if err != nil {
			return err
		}
		now := u.now()
		for _, s := range siblings {
			if s.IsPrimary && s.ID != target.ID {
				s.IsPrimary = false
				s.UpdatedAt = now
				if err := tx.UpdateProperty(ctx, s); err != nil {
					return err
				}
			}
		}
		if target.IsPrimary {
			return nil
		}
		target.IsPrimary = true
		target.UpdatedAt = now
		return tx.UpdateProperty(ctx, target)
	})
	if err != nil {
		return entities.Property{}, err
	}
	u.record(ctx, id, entities.EntityProperty, target.ID, "primary_set", map[string]string{"customer_id": target.CustomerID})
	return target, nil
}

func (u *CustomerUseCase) CreateEquipment(ctx context.Context, in EquipmentInput) (entities.Equipment, error) {
	id, err := u.begin(ctx, permissions.ResourceEquipment, permissions.ActionCreate)
	if err != nil {
		return entities.Equipment{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Equipment{}, invalidField("name", "required")
	}

	now := u.now()
	e := entities.Equipment{
		ID:           u.newID(),
		TenantID:     id.TenantID,
		CustomerID:   in.CustomerID,
		PropertyID:   in.PropertyID,
		Name:         strings.TrimSpace(in.Name),
		Manufacturer: in.Manufacturer,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		InstallDate:  in.InstallDate,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = u.tx(ctx, "create equipment", id, func(tx interfaces.IDocumentRepository) error {
		if _, err := activeCustomer(ctx, tx, id.TenantID, in.CustomerID); err != nil {
			return err
		}
		if in.PropertyID != "" {
			if err := ownedProperty(ctx, tx, id.TenantID, in.CustomerID, in.PropertyID); err != nil {
				return err
			}
		}
		return tx.CreateEquipment(ctx, e)
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	u.record(ctx, id, entities.EntityEquipment, e.ID, "created", map[string]string{"customer_id": e.CustomerID})
	return e, nil
}

// ownedProperty checks that propertyID exists and belongs to customerID.
func ownedProperty(ctx context.Context, r interfaces.IDocumentRepository, tenantID, customerID, propertyID string) error {
	p, err := r.GetProperty(ctx, tenantID, propertyID)
	if err != nil {
		return err
	}
	if p.ID == "" || p.CustomerID != customerID {
		return invalidField("property_id", "must reference a property of the customer")
	}
	return nil
}

func (u *CustomerUseCase) ListEquipment(ctx context.Context, customerID string) ([]entities.Equipment, error) {
	id, err := u.beginOn(ctx, permissions.ResourceEquipment, permissions.ActionRead, liveCustomer(ctx, customerID), ErrCustomerNotFound)
	if err != nil {
		return nil, err
	}
	var out []entities.Equipment
	err = u.read(ctx, "list equipment", id, func(r interfaces.IDocumentRepository) error {
		var err error
		out, err = r.ListEquipment(ctx, id.TenantID, customerID)
		return err
	})
	return out, err
}

func (u *CustomerUseCase) DeleteEquipment(ctx context.Context, equipmentID string) error {
	exists := func(r interfaces.IDocumentRepository, tenantID string) (bool, error) {
		e, err := r.GetEquipment(ctx, tenantID, equipmentID)
		return e.ID != "", err
	}
	id, err := u.beginOn(ctx, permissions.ResourceEquipment, permissions.ActionDelete, exists, ErrEquipmentNotFound)
	if err != nil {
		return err
	}
	err = u.tx(ctx, "delete equipment", id, func(tx interfaces.IDocumentRepository) error {
		return tx.DeleteEquipment(ctx, id.TenantID, equipmentID)
	})
	if err != nil {
		return err
	}
	u.record(ctx, id, entities.EntityEquipment, equipmentID, "deleted", nil)
	return nil
}
