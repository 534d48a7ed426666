package barbers

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/httputil"
	"barberagenda/pkg/logger"
	"barberagenda/pkg/model"
)

type barberResponse struct {
	Message string        `json:"message,omitempty"`
	Barber  *model.Barber `json:"barber"`
}

type barberListResponse struct {
	Barbers []*model.Barber `json:"barbers"`
	Count   int             `json:"count"`
}

type Handler struct {
	service Service
	log     *logger.Logger
}

func NewHandler(service Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload model.BarberCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, apperrors.Internal("Failed to create barber", err))
		return
	}

	barber, err := h.service.Create(r.Context(), &payload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, barberResponse{
		Message: "Barber created successfully",
		Barber:  barber,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	barber, err := h.service.GetByID(r.Context(), ps.ByName("barberId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, barberResponse{Barber: barber})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	barbers, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, barberListResponse{
		Barbers: barbers,
		Count:   len(barbers),
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.BarberUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeError(w, apperrors.Internal("Failed to update barber", err))
		return
	}

	barber, err := h.service.Update(r.Context(), ps.ByName("barberId"), &updates)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, barberResponse{
		Message: "Barber updated successfully",
		Barber:  barber,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("barberId")); err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteMessage(w, http.StatusOK, "Barber deleted successfully"); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Delete", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/barbers", h.Create)
	router.GET("/barbers", h.List)
	router.GET("/barbers/:barberId", h.Get)
	router.PUT("/barbers/:barberId", h.Update)
	router.PATCH("/barbers/:barberId", h.Update)
	router.DELETE("/barbers/:barberId", h.Delete)
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
