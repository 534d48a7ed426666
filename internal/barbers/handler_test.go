package barbers

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

type mockService struct {
	createFunc  func(ctx context.Context, payload *model.BarberCreate) (*model.Barber, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Barber, error)
	getAllFunc  func(ctx context.Context) ([]*model.Barber, error)
	updateFunc  func(ctx context.Context, id string, updates *model.BarberUpdate) (*model.Barber, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockService) Create(ctx context.Context, payload *model.BarberCreate) (*model.Barber, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, payload)
	}
	return &model.Barber{}, nil
}

func (m *mockService) GetByID(ctx context.Context, id string) (*model.Barber, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Barber{}, nil
}

func (m *mockService) GetAll(ctx context.Context) ([]*model.Barber, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Barber{}, nil
}

func (m *mockService) Update(ctx context.Context, id string, updates *model.BarberUpdate) (*model.Barber, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, updates)
	}
	return &model.Barber{}, nil
}

func (m *mockService) Delete(ctx context.Context, id string) error {
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

func TestCreateHandler_WrapsRecordWithMessage(t *testing.T) {
	router := newTestRouter(&mockService{
		createFunc: func(ctx context.Context, payload *model.BarberCreate) (*model.Barber, error) {
			return &model.Barber{BarberID: "b1", Name: payload.Name}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/barbers", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body barberResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "Barber created successfully" {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if body.Barber == nil || body.Barber.BarberID != "b1" {
		t.Errorf("unexpected barber: %+v", body.Barber)
	}
}

func TestCreateHandler_MalformedBodyIs500(t *testing.T) {
	router := newTestRouter(&mockService{})

	req := httptest.NewRequest(http.MethodPost, "/barbers", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	router := newTestRouter(&mockService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Barber, error) {
			return nil, apperrors.NotFound("Barber")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/barbers/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Barber not found" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestListHandler_EmptyCollection(t *testing.T) {
	router := newTestRouter(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/barbers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body barberListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Count != 0 {
		t.Errorf("expected count 0, got %d", body.Count)
	}
	if body.Barbers == nil {
		t.Error("expected barbers to serialize as an empty array, not null")
	}
}

func TestUpdateHandler_PutAndPatchBehaveIdentically(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			router := newTestRouter(&mockService{
				updateFunc: func(ctx context.Context, id string, updates *model.BarberUpdate) (*model.Barber, error) {
					return &model.Barber{BarberID: id, Name: *updates.Name}, nil
				},
			})

			req := httptest.NewRequest(method, "/barbers/b1", strings.NewReader(`{"name":"Bob"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var body barberResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.Message != "Barber updated successfully" {
				t.Errorf("unexpected message: %q", body.Message)
			}
		})
	}
}

func TestDeleteHandler_Confirmation(t *testing.T) {
	router := newTestRouter(&mockService{})

	req := httptest.NewRequest(http.MethodDelete, "/barbers/b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Barber deleted successfully" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestHandlers_CORSHeaderOnEveryResponse(t *testing.T) {
	router := newTestRouter(&mockService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Barber, error) {
			return nil, apperrors.NotFound("Barber")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/barbers/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected wildcard CORS header on error responses")
	}
}
