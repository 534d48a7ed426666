package services

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/httputil"
	"barberagenda/pkg/logger"
	"barberagenda/pkg/model"
)

// Handler serializes services bare, not wrapped under a named key: an
// intentional asymmetry from the barber handlers preserved for
// compatibility with existing clients.
type Handler struct {
	service Service
	log     *logger.Logger
}

func NewHandler(service Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload model.ServiceCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, apperrors.Internal("Failed to create service", err))
		return
	}

	service, err := h.service.Create(r.Context(), &payload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, service)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	service, err := h.service.GetByID(r.Context(), ps.ByName("serviceId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, service)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, services)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeError(w, apperrors.Internal("Failed to update service", err))
		return
	}

	service, err := h.service.Update(r.Context(), ps.ByName("serviceId"), &updates)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, service)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("serviceId")); err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteMessage(w, http.StatusOK, "Service deleted successfully"); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Delete", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/services", h.Create)
	router.GET("/services", h.List)
	router.GET("/services/:serviceId", h.Get)
	router.PUT("/services/:serviceId", h.Update)
	router.PATCH("/services/:serviceId", h.Update)
	router.DELETE("/services/:serviceId", h.Delete)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	if err := httputil.WriteJSON(w, status, payload); err != nil {
		h.log.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "error", writeErr)
	}
}
