package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/logger"
	"barberagenda/pkg/model"
)

type mockCatalog struct {
	createFunc  func(ctx context.Context, payload *model.ServiceCreate) (*model.Service, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Service, error)
	getAllFunc  func(ctx context.Context) ([]*model.Service, error)
	updateFunc  func(ctx context.Context, id string, updates *model.ServiceUpdate) (*model.Service, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockCatalog) Create(ctx context.Context, payload *model.ServiceCreate) (*model.Service, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, payload)
	}
	return &model.Service{}, nil
}

func (m *mockCatalog) GetByID(ctx context.Context, id string) (*model.Service, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Service{}, nil
}

func (m *mockCatalog) GetAll(ctx context.Context) ([]*model.Service, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Service{}, nil
}

func (m *mockCatalog) Update(ctx context.Context, id string, updates *model.ServiceUpdate) (*model.Service, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, updates)
	}
	return &model.Service{}, nil
}

func (m *mockCatalog) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestRouter(service Service) *httprouter.Router {
	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	router := httprouter.New()
	NewHandler(service, log).RegisterRoutes(router)
	return router
}

// services serialize bare, without an envelope
func TestCreateHandler_BareRecord(t *testing.T) {
	router := newTestRouter(&mockCatalog{
		createFunc: func(ctx context.Context, payload *model.ServiceCreate) (*model.Service, error) {
			return &model.Service{ServiceID: "service-1", Title: payload.Title}, nil
		},
	})

	body := `{"title":"Classic Cut","name":"classic-cut","price":30,"duration":30,"durationMinutes":30}`
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got model.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ServiceID != "service-1" {
		t.Errorf("unexpected serviceId: %q", got.ServiceID)
	}
}

func TestListHandler_BareArray(t *testing.T) {
	router := newTestRouter(&mockCatalog{
		getAllFunc: func(ctx context.Context) ([]*model.Service, error) {
			return []*model.Service{{ServiceID: "service-1"}, {ServiceID: "service-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []*model.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected a top-level array: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 services, got %d", len(got))
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	router := newTestRouter(&mockCatalog{
		getByIDFunc: func(ctx context.Context, id string) (*model.Service, error) {
			return nil, apperrors.NotFound("Service")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/services/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateHandler_ValidationFailure(t *testing.T) {
	router := newTestRouter(&mockCatalog{
		updateFunc: func(ctx context.Context, id string, updates *model.ServiceUpdate) (*model.Service, error) {
			return nil, apperrors.InvalidInput("price must be at least 0")
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/services/service-1", strings.NewReader(`{"price":-5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteHandler_Confirmation(t *testing.T) {
	router := newTestRouter(&mockCatalog{})

	req := httptest.NewRequest(http.MethodDelete, "/services/service-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Service deleted successfully" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}
