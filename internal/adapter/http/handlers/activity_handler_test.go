package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

func TestActivityHandler_ListActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIActivityUseCase(ctrl)
	uc.EXPECT().ListActivity(gomock.Any(), interfaces.ActivityFilter{EntityType: entities.EntityJob, EntityID: "job-1", Limit: 20}).
		Return([]entities.ActivityLogEntry{{ID: "a-1", Action: "status_changed"}}, nil)
	uc.EXPECT().ListActivity(gomock.Any(), interfaces.ActivityFilter{}).Return(nil, usecase.ErrForbidden)

	h := NewActivityHandler(uc)
	r := gin.New()
	r.GET("/v1/activity", h.ListActivity)

	if w := serve(r, http.MethodGet, "/v1/activity?entity_type=job&entity_id=job-1&limit=20", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/activity", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/v1/activity?limit=ten", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
