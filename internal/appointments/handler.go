package appointments

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/httputil"
	"barberagenda/pkg/logger"
	"barberagenda/pkg/model"
)

type appointmentResponse struct {
	Appointment *model.Appointment `json:"appointment"`
}

type appointmentListResponse struct {
	Appointments []*model.Appointment `json:"appointments"`
}

type Handler struct {
	service Service
	log     *logger.Logger
}

func NewHandler(service Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload model.AppointmentCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, apperrors.Internal("Failed to create appointment", err))
		return
	}

	appointment, err := h.service.Create(r.Context(), ps.ByName("barberId"), &payload)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, appointmentResponse{Appointment: appointment})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	appointment, err := h.service.GetByKey(r.Context(), ps.ByName("barberId"), ps.ByName("appointmentId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, appointmentResponse{Appointment: appointment})
}

// List reads optional startDate and endDate query parameters, both epoch
// milliseconds. The window is applied only when both are present.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	window, err := parseWindow(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	appointments, err := h.service.ListByBarber(r.Context(), ps.ByName("barberId"), window)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, appointmentListResponse{Appointments: appointments})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.AppointmentUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeError(w, apperrors.Internal("Failed to update appointment", err))
		return
	}

	appointment, err := h.service.Update(r.Context(), ps.ByName("barberId"), ps.ByName("appointmentId"), &updates)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, appointmentResponse{Appointment: appointment})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("barberId"), ps.ByName("appointmentId")); err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteMessage(w, http.StatusOK, "Appointment deleted successfully"); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Delete", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/barbers/:barberId/appointments", h.Create)
	router.GET("/barbers/:barberId/appointments", h.List)
	router.GET("/barbers/:barberId/appointments/:appointmentId", h.Get)
	router.PUT("/barbers/:barberId/appointments/:appointmentId", h.Update)
	router.PATCH("/barbers/:barberId/appointments/:appointmentId", h.Update)
	router.DELETE("/barbers/:barberId/appointments/:appointmentId", h.Delete)
}

func parseWindow(r *http.Request) (TimeRange, error) {
	var window TimeRange
	query := r.URL.Query()

	if raw := query.Get("startDate"); raw != "" {
		from, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return TimeRange{}, apperrors.Internal("Failed to get appointments", err)
		}
		window.From = &from
	}
	if raw := query.Get("endDate"); raw != "" {
		to, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return TimeRange{}, apperrors.Internal("Failed to get appointments", err)
		}
		window.To = &to
	}
	return window, nil
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
