package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

// ListActivity returns the tenant's feed newest first, optionally narrowed by
// entity_type and entity_id.
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	q := newQueryParser(c)
	f := interfaces.ActivityFilter{
		EntityType: entities.EntityType(c.Query("entity_type")),
		EntityID:   c.Query("entity_id"),
		Limit:      q.intParam("limit"),
	}
	if !q.ok() {
		return
	}
	entries, err := h.usecase.ListActivity(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
