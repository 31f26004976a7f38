package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/adapter/http/handlers"
)

const (
	PathCustomers  = "/customers"
	PathProperties = "/properties"
	PathEquipment  = "/equipment"
	PathJobs       = "/jobs"
	PathEstimates  = "/estimates"
	PathInvoices   = "/invoices"
	PathActivity   = "/activity"
	PathMeta       = "/meta"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
		customers.POST("/:id/properties", h.CreateProperty)
		customers.GET("/:id/properties", h.ListProperties)
		customers.POST("/:id/equipment", h.CreateEquipment)
		customers.GET("/:id/equipment", h.ListEquipment)
	}
	rg.POST(PathProperties+"/:id/primary", h.SetPrimaryProperty)
	rg.DELETE(PathEquipment+"/:id", h.DeleteEquipment)
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler, invoices *handlers.InvoiceHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/status", h.ChangeJobStatus)
		jobs.POST("/:id/assign", h.AssignJob)
		jobs.POST("/:id/line-items", h.AddJobLineItem)
		jobs.DELETE("/:id/line-items/:lineId", h.RemoveJobLineItem)
		jobs.POST("/:id/notes", h.AddJobNote)
		jobs.POST("/:id/photos", h.AddJobPhoto)
		jobs.POST("/:id/signatures", h.AddJobSignature)
		jobs.POST("/:id/invoice", invoices.CreateInvoiceFromJob)
	}
	rg.GET(PathMeta+"/job-transitions", h.JobTransitions)
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.CreateEstimate)
		estimates.GET("", h.ListEstimates)
		estimates.GET("/:id", h.GetEstimate)
		estimates.POST("/:id/options", h.AddEstimateOption)
		estimates.POST("/:id/options/:optionId/line-items", h.AddEstimateLineItem)
		estimates.DELETE("/:id/options/:optionId/line-items/:lineId", h.RemoveEstimateLineItem)
		estimates.POST("/:id/send", h.SendEstimate)
		estimates.POST("/:id/viewed", h.MarkEstimateViewed)
		estimates.POST("/:id/approve", h.ApproveEstimate)
		estimates.POST("/:id/decline", h.DeclineEstimate)
		estimates.POST("/:id/expire", h.ExpireEstimate)
		estimates.POST("/:id/convert", h.ConvertToInvoice)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("/:id/line-items", h.AddInvoiceLineItem)
		invoices.DELETE("/:id/line-items/:lineId", h.RemoveInvoiceLineItem)
		invoices.POST("/:id/send", h.SendInvoice)
		invoices.POST("/:id/viewed", h.MarkInvoiceViewed)
		invoices.POST("/:id/void", h.VoidInvoice)
		invoices.POST("/:id/payments", h.RecordPayment)
		invoices.GET("/:id/payments", h.ListPayments)
		invoices.POST("/:id/charge", h.ChargeInvoice)
	}
}

func addActivityRoutes(rg *gin.RouterGroup, h *handlers.ActivityHandler) {
	rg.GET(PathActivity, h.ListActivity)
}
