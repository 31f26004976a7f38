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

// EstimateHandler handles HTTP requests for estimates and their options.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	q := newQueryParser(c)
	f := interfaces.EstimateFilter{
		Status:     entities.EstimateStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		JobID:      c.Query("job_id"),
		Limit:      q.intParam("limit"),
		Offset:     q.intParam("offset"),
	}
	if !q.ok() {
		return
	}
	estimates, err := h.usecase.ListEstimates(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Mapped(estimates, response.FromEstimate))
}

func (h *EstimateHandler) AddEstimateOption(c *gin.Context) {
	var payload request.EstimateOptionRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimate, err := h.usecase.AddEstimateOption(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) AddEstimateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimate, err := h.usecase.AddEstimateLineItem(c.Request.Context(), c.Param("id"), c.Param("optionId"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) RemoveEstimateLineItem(c *gin.Context) {
	estimate, err := h.usecase.RemoveEstimateLineItem(c.Request.Context(), c.Param("id"), c.Param("optionId"), c.Param("lineId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.transition(c, h.usecase.SendEstimate)
}

func (h *EstimateHandler) MarkEstimateViewed(c *gin.Context) {
	h.transition(c, h.usecase.MarkEstimateViewed)
}

func (h *EstimateHandler) DeclineEstimate(c *gin.Context) {
	h.transition(c, h.usecase.DeclineEstimate)
}

func (h *EstimateHandler) ExpireEstimate(c *gin.Context) {
	h.transition(c, h.usecase.ExpireEstimate)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	var payload request.ApproveEstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimate, err := h.usecase.ApproveEstimate(c.Request.Context(), c.Param("id"), payload.OptionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ConvertToInvoice(c *gin.Context) {
	var payload request.ConvertEstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"), payload.DueDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *EstimateHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
