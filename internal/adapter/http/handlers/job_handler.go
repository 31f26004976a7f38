package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs accepts status, assigned_to, customer_id, scheduled_from,
// scheduled_to (RFC 3339), limit and offset.
func (h *JobHandler) ListJobs(c *gin.Context) {
	q := newQueryParser(c)
	f := interfaces.JobFilter{
		Status:        entities.JobStatus(c.Query("status")),
		AssignedTo:    c.Query("assigned_to"),
		CustomerID:    c.Query("customer_id"),
		ScheduledFrom: q.timeParam("scheduled_from"),
		ScheduledTo:   q.timeParam("scheduled_to"),
		Limit:         q.intParam("limit"),
		Offset:        q.intParam("offset"),
	}
	if !q.ok() {
		return
	}
	jobs, err := h.usecase.ListJobs(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Mapped(jobs, response.FromJob))
}

func (h *JobHandler) ChangeJobStatus(c *gin.Context) {
	var payload request.JobStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.ChangeJobStatus(c.Request.Context(), c.Param("id"), entities.JobStatus(payload.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AssignJob(c *gin.Context) {
	var payload request.AssignJobRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.AssignJob(c.Request.Context(), c.Param("id"), payload.TechnicianID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AddJobLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.AddJobLineItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) RemoveJobLineItem(c *gin.Context) {
	job, err := h.usecase.RemoveJobLineItem(c.Request.Context(), c.Param("id"), c.Param("lineId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AddJobNote(c *gin.Context) {
	var payload request.JobNoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	note, err := h.usecase.AddJobNote(c.Request.Context(), c.Param("id"), payload.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *JobHandler) AddJobPhoto(c *gin.Context) {
	var payload request.JobAttachmentRequest
	if !bindJSON(c, &payload) {
		return
	}
	photo, err := h.usecase.AddJobPhoto(c.Request.Context(), c.Param("id"), payload.Path, payload.Caption)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *JobHandler) AddJobSignature(c *gin.Context) {
	var payload request.JobAttachmentRequest
	if !bindJSON(c, &payload) {
		return
	}
	sig, err := h.usecase.AddJobSignature(c.Request.Context(), c.Param("id"), payload.Path, payload.SignerName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sig)
}

// JobTransitions publishes the job status table so clients can mirror it.
func (h *JobHandler) JobTransitions(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.TransitionTable())
}
