package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

func jobRouter(uc usecase.IJobUseCase) *gin.Engine {
	h := NewJobHandler(uc)
	r := gin.New()
	r.POST("/v1/jobs", h.CreateJob)
	r.GET("/v1/jobs", h.ListJobs)
	r.GET("/v1/jobs/:id", h.GetJob)
	r.POST("/v1/jobs/:id/status", h.ChangeJobStatus)
	r.POST("/v1/jobs/:id/assign", h.AssignJob)
	r.POST("/v1/jobs/:id/line-items", h.AddJobLineItem)
	r.DELETE("/v1/jobs/:id/line-items/:lineId", h.RemoveJobLineItem)
	r.POST("/v1/jobs/:id/notes", h.AddJobNote)
	r.POST("/v1/jobs/:id/photos", h.AddJobPhoto)
	r.POST("/v1/jobs/:id/signatures", h.AddJobSignature)
	r.GET("/v1/meta/job-transitions", h.JobTransitions)
	return r
}

func TestJobHandler_CreateJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in usecase.JobInput) (entities.Job, error) {
			if len(in.LineItems) != 2 {
				t.Fatalf("expected 2 lines, got %d", len(in.LineItems))
			}
			if !in.LineItems[1].UnitPrice.Equal(decimal.RequireFromString("4.1166")) {
				t.Fatalf("unexpected unit price %s", in.LineItems[1].UnitPrice)
			}
			return entities.Job{ID: "job-1", Number: "JOB-000001", Status: entities.JobStatusNew, TotalAmount: decimal.RequireFromString("87.35")}, nil
		})

	body := `{"customer_id":"c-1","property_id":"p-1","title":"No heat","line_items":[
		{"description":"Diagnostic","quantity":"1","unit_price":"75.00","type":"service"},
		{"description":"Filter","quantity":3,"unit_price":"4.1166","type":"material"}]}`
	w := serve(jobRouter(uc), http.MethodPost, "/v1/jobs", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	res := decodeJSON(t, w)
	if res["number"] != "JOB-000001" || res["total_amount"] != "87.35" {
		t.Fatalf("unexpected body %+v", res)
	}
}

func TestJobHandler_ChangeJobStatus(t *testing.T) {
	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().ChangeJobStatus(gomock.Any(), "job-1", entities.JobStatusInProgress).
			Return(entities.Job{}, &usecase.Error{Kind: usecase.KindValidation, Message: usecase.ErrIllegalTransition.Message, Fields: map[string]string{"status": "completed -> in_progress"}})

		w := serve(jobRouter(uc), http.MethodPost, "/v1/jobs/job-1/status", `{"status":"in_progress"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Details["status"] != "completed -> in_progress" {
			t.Fatalf("unexpected details %+v", body.Details)
		}
	})

	t.Run("dispatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().ChangeJobStatus(gomock.Any(), "job-1", entities.JobStatusDispatched).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusDispatched, DispatchedAt: &at}, nil)

		w := serve(jobRouter(uc), http.MethodPost, "/v1/jobs/job-1/status", `{"status":"dispatched"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeJSON(t, w); body["dispatched_at"] != "2026-03-10T09:00:00Z" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestJobHandler_AssignJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	tech := "tech-7"
	uc.EXPECT().AssignJob(gomock.Any(), "job-1", &tech).Return(entities.Job{ID: "job-1", AssignedTo: &tech}, nil)
	uc.EXPECT().AssignJob(gomock.Any(), "job-1", gomock.Nil()).Return(entities.Job{ID: "job-1"}, nil)

	r := jobRouter(uc)
	if w := serve(r, http.MethodPost, "/v1/jobs/job-1/assign", `{"technician_id":"tech-7"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/jobs/job-1/assign", `{"technician_id":null}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestJobHandler_ListJobs(t *testing.T) {
	t.Run("bad timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)

		w := serve(jobRouter(uc), http.MethodGet, "/v1/jobs?scheduled_from=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().ListJobs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
				if f.Status != entities.JobStatusScheduled || f.AssignedTo != "tech-7" {
					t.Fatalf("unexpected filter %+v", f)
				}
				if f.ScheduledFrom == nil || f.ScheduledTo != nil {
					t.Fatalf("unexpected window %+v", f)
				}
				return nil, nil
			})

		w := serve(jobRouter(uc), http.MethodGet, "/v1/jobs?status=scheduled&assigned_to=tech-7&scheduled_from=2026-03-10T00:00:00Z", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestJobHandler_Children(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	uc.EXPECT().AddJobNote(gomock.Any(), "job-1", "Replaced igniter").Return(entities.JobNote{ID: "n-1"}, nil)
	uc.EXPECT().AddJobPhoto(gomock.Any(), "job-1", "tenant-a/jobs/job-1/after.jpg", "after").Return(entities.JobPhoto{ID: "ph-1"}, nil)
	uc.EXPECT().AddJobSignature(gomock.Any(), "job-1", "tenant-a/jobs/job-1/sig.png", "Ada").Return(entities.JobSignature{ID: "s-1"}, nil)
	uc.EXPECT().RemoveJobLineItem(gomock.Any(), "job-1", "li-9").Return(entities.Job{}, usecase.ErrLineItemNotFound)

	r := jobRouter(uc)
	if w := serve(r, http.MethodPost, "/v1/jobs/job-1/notes", `{"body":"Replaced igniter"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/jobs/job-1/photos", `{"path":"tenant-a/jobs/job-1/after.jpg","caption":"after"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/jobs/job-1/signatures", `{"path":"tenant-a/jobs/job-1/sig.png","signer_name":"Ada"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := serve(r, http.MethodDelete, "/v1/jobs/job-1/line-items/li-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestJobHandler_JobTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	uc.EXPECT().TransitionTable().Return(entities.JobTransitionTable())

	w := serve(jobRouter(uc), http.MethodGet, "/v1/meta/job-transitions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var table map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &table); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(table["completed"]) != 0 {
		t.Fatalf("completed must be terminal, got %v", table["completed"])
	}
	if len(table["new"]) != 2 {
		t.Fatalf("unexpected transitions from new: %v", table["new"])
	}
}
