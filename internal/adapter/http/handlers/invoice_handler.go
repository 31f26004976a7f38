package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

// InvoiceHandler handles invoices and the payments applied to them.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// CreateInvoiceFromJob bills the job's current line items.
func (h *InvoiceHandler) CreateInvoiceFromJob(c *gin.Context) {
	var payload request.InvoiceFromJobRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.CreateInvoiceFromJob(c.Request.Context(), c.Param("id"), payload.DueDate, payload.TaxRate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	q := newQueryParser(c)
	f := interfaces.InvoiceFilter{
		Status:     entities.InvoiceStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		JobID:      c.Query("job_id"),
		EstimateID: c.Query("estimate_id"),
		Limit:      q.intParam("limit"),
		Offset:     q.intParam("offset"),
	}
	if !q.ok() {
		return
	}
	invoices, err := h.usecase.ListInvoices(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Mapped(invoices, response.FromInvoice))
}

func (h *InvoiceHandler) AddInvoiceLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.AddInvoiceLineItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) RemoveInvoiceLineItem(c *gin.Context) {
	invoice, err := h.usecase.RemoveInvoiceLineItem(c.Request.Context(), c.Param("id"), c.Param("lineId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	h.transition(c, h.usecase.SendInvoice)
}

func (h *InvoiceHandler) MarkInvoiceViewed(c *gin.Context) {
	h.transition(c, h.usecase.MarkInvoiceViewed)
}

func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	h.transition(c, h.usecase.VoidInvoice)
}

func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if !bindJSON(c, &payload) {
		return
	}
	payment, invoice, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.PaymentResultResponse{
		Payment: response.FromPayment(payment),
		Invoice: response.FromInvoice(invoice),
	})
}

func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Mapped(payments, response.FromPayment))
}

// ChargeInvoice charges a card through the payment provider. The outcome is
// recorded either way; only an approved charge returns 201.
func (h *InvoiceHandler) ChargeInvoice(c *gin.Context) {
	var payload request.ChargeRequest
	if !bindJSON(c, &payload) {
		return
	}
	payment, invoice, err := h.usecase.ChargeInvoice(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusCreated
	if payment.Status != entities.PaymentStatusSucceeded {
		status = http.StatusAccepted
	}
	c.JSON(status, response.PaymentResultResponse{
		Payment: response.FromPayment(payment),
		Invoice: response.FromInvoice(invoice),
	})
}

func (h *InvoiceHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Invoice, error),
) {
	invoice, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}
