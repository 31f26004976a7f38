package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "fieldops/internal/adapter/http/dto/request"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

// CustomerHandler serves customers and the properties and equipment they own.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if !bindJSON(c, &payload) {
		return
	}
	customer, err := h.usecase.CreateCustomer(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// ListCustomers accepts search, type, include_deleted, limit and offset.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	q := newQueryParser(c)
	f := interfaces.CustomerFilter{
		Search:         c.Query("search"),
		Type:           entities.CustomerType(c.Query("type")),
		IncludeDeleted: q.boolParam("include_deleted"),
		Limit:          q.intParam("limit"),
		Offset:         q.intParam("offset"),
	}
	if !q.ok() {
		return
	}
	customers, err := h.usecase.ListCustomers(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerPatchRequest
	if !bindJSON(c, &payload) {
		return
	}
	customer, err := h.usecase.UpdateCustomer(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) CreateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if !bindJSON(c, &payload) {
		return
	}
	property, err := h.usecase.CreateProperty(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *CustomerHandler) ListProperties(c *gin.Context) {
	properties, err := h.usecase.ListProperties(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *CustomerHandler) SetPrimaryProperty(c *gin.Context) {
	property, err := h.usecase.SetPrimaryProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *CustomerHandler) CreateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if !bindJSON(c, &payload) {
		return
	}
	equipment, err := h.usecase.CreateEquipment(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

func (h *CustomerHandler) ListEquipment(c *gin.Context) {
	equipment, err := h.usecase.ListEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *CustomerHandler) DeleteEquipment(c *gin.Context) {
	if err := h.usecase.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
