package request

import (
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
	Type    string `json:"type"`
}

func (r CustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    r.Name,
		Company: r.Company,
		Email:   r.Email,
		Phone:   r.Phone,
		Notes:   r.Notes,
		Type:    entities.CustomerType(r.Type),
	}
}

// CustomerPatchRequest only changes the fields present in the body.
type CustomerPatchRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Notes   *string `json:"notes"`
	Type    *string `json:"type"`
}

func (r CustomerPatchRequest) ToPatch() usecase.CustomerPatch {
	p := usecase.CustomerPatch{
		Name:    r.Name,
		Company: r.Company,
		Email:   r.Email,
		Phone:   r.Phone,
		Notes:   r.Notes,
	}
	if r.Type != nil {
		t := entities.CustomerType(*r.Type)
		p.Type = &t
	}
	return p
}

type AddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type PropertyRequest struct {
	Address   AddressRequest `json:"address"`
	Latitude  *float64       `json:"latitude"`
	Longitude *float64       `json:"longitude"`
	IsPrimary bool           `json:"is_primary"`
}

func (r PropertyRequest) ToInput(customerID string) usecase.PropertyInput {
	a := r.Address
	return usecase.PropertyInput{
		CustomerID: customerID,
		Address: entities.Address{
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		},
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		IsPrimary: r.IsPrimary,
	}
}

type EquipmentRequest struct {
	PropertyID   string     `json:"property_id"`
	Name         string     `json:"name"`
	Manufacturer string     `json:"manufacturer"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	InstallDate  *time.Time `json:"install_date"`
	Notes        string     `json:"notes"`
}

func (r EquipmentRequest) ToInput(customerID string) usecase.EquipmentInput {
	return usecase.EquipmentInput{
		CustomerID:   customerID,
		PropertyID:   r.PropertyID,
		Name:         r.Name,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		InstallDate:  r.InstallDate,
		Notes:        r.Notes,
	}
}
