package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"barberagenda/pkg/config"
	dbmongo "barberagenda/pkg/db/mongo"
	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/model"
	"barberagenda/pkg/validation"
)

type Service interface {
	Create(ctx context.Context, barberID string, payload *model.AppointmentCreate) (*model.Appointment, error)
	GetByKey(ctx context.Context, barberID, appointmentID string) (*model.Appointment, error)
	ListByBarber(ctx context.Context, barberID string, window TimeRange) ([]*model.Appointment, error)
	Update(ctx context.Context, barberID, appointmentID string, updates *model.AppointmentUpdate) (*model.Appointment, error)
	Delete(ctx context.Context, barberID, appointmentID string) error
}

type bookingService struct {
	repo      Repository
	publisher Publisher
	validator *validation.Validator
	cfg       *config.Config
}

func NewService(repo Repository, publisher Publisher, validator *validation.Validator, cfg *config.Config) Service {
	return &bookingService{repo: repo, publisher: publisher, validator: validator, cfg: cfg}
}

func (s *bookingService) Create(ctx context.Context, barberID string, payload *model.AppointmentCreate) (*model.Appointment, error) {
	if barberID == "" {
		return nil, apperrors.InvalidInput("barberId is required")
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	// Status is always scheduled at creation regardless of what the
	// caller sent. Overlapping time windows are accepted.
	appointment := &model.Appointment{
		AppointmentID: uuid.NewString(),
		BarberID:      barberID,
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		StartTime:     *payload.StartTime,
		EndTime:       *payload.EndTime,
		Service:       payload.Service,
		Notes:         payload.Notes,
		Status:        model.StatusScheduled,
		CreatedAt:     time.Now().UnixMilli(),
	}

	if err := s.repo.Insert(ctx, appointment); err != nil {
		s.cfg.Log.Error("Failed to create appointment", "barber_id", barberID, "error", err)
		return nil, apperrors.Internal("Failed to create appointment", err)
	}

	s.publishEvent(ctx, EventAppointmentCreated, appointment.AppointmentID, barberID, appointment)
	s.cfg.Log.Info("Appointment created successfully", "appointment_id", appointment.AppointmentID, "barber_id", barberID)
	return appointment, nil
}

func (s *bookingService) GetByKey(ctx context.Context, barberID, appointmentID string) (*model.Appointment, error) {
	if barberID == "" || appointmentID == "" {
		return nil, apperrors.InvalidInput("barberId and appointmentId are required")
	}

	appointment, err := s.repo.FindByKey(ctx, barberID, appointmentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Appointment")
		}
		return nil, apperrors.Internal("Failed to get appointment", err)
	}
	return appointment, nil
}

func (s *bookingService) ListByBarber(ctx context.Context, barberID string, window TimeRange) ([]*model.Appointment, error) {
	if barberID == "" {
		return nil, apperrors.InvalidInput("barberId is required")
	}

	appointments, err := s.repo.FindByBarber(ctx, barberID, window)
	if err != nil {
		s.cfg.Log.Error("Failed to list appointments", "barber_id", barberID, "error", err)
		return nil, apperrors.Internal("Failed to get appointments", err)
	}
	return appointments, nil
}

func (s *bookingService) Update(ctx context.Context, barberID, appointmentID string, updates *model.AppointmentUpdate) (*model.Appointment, error) {
	if barberID == "" || appointmentID == "" {
		return nil, apperrors.InvalidInput("barberId and appointmentId are required")
	}

	set := dbmongo.NewSetBuilder()
	if updates.CustomerName != nil {
		set.Set("customer_name", *updates.CustomerName)
	}
	if updates.CustomerPhone != nil {
		set.Set("customer_phone", *updates.CustomerPhone)
	}
	if updates.StartTime != nil {
		set.Set("start_time", *updates.StartTime)
	}
	if updates.EndTime != nil {
		set.Set("end_time", *updates.EndTime)
	}
	if updates.Service != nil {
		set.Set("service", *updates.Service)
	}
	if updates.Notes != nil {
		set.Set("notes", *updates.Notes)
	}
	if updates.Status != nil {
		set.Set("status", *updates.Status)
	}

	// An empty field set degenerates to a no-op: return the record as-is.
	if set.Empty() {
		return s.GetByKey(ctx, barberID, appointmentID)
	}

	appointment, err := s.repo.UpdateByKey(ctx, barberID, appointmentID, set)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Appointment")
		}
		s.cfg.Log.Error("Failed to update appointment", "appointment_id", appointmentID, "error", err)
		return nil, apperrors.Internal("Failed to update appointment", err)
	}

	s.publishEvent(ctx, EventAppointmentUpdated, appointmentID, barberID, appointment)
	s.cfg.Log.Info("Appointment updated successfully", "appointment_id", appointmentID, "barber_id", barberID)
	return appointment, nil
}

// Delete succeeds whether or not the appointment exists.
func (s *bookingService) Delete(ctx context.Context, barberID, appointmentID string) error {
	if barberID == "" || appointmentID == "" {
		return apperrors.InvalidInput("barberId and appointmentId are required")
	}

	if err := s.repo.DeleteByKey(ctx, barberID, appointmentID); err != nil {
		s.cfg.Log.Error("Failed to delete appointment", "appointment_id", appointmentID, "error", err)
		return apperrors.Internal("Failed to delete appointment", err)
	}

	s.publishEvent(ctx, EventAppointmentDeleted, appointmentID, barberID, nil)
	s.cfg.Log.Info("Appointment deleted successfully", "appointment_id", appointmentID, "barber_id", barberID)
	return nil
}

// publishEvent is best-effort: a broker failure is logged and never
// surfaces to the caller, since the record mutation already committed.
func (s *bookingService) publishEvent(ctx context.Context, eventType, appointmentID, barberID string, appointment *model.Appointment) {
	event := Event{
		Type:          eventType,
		AppointmentID: appointmentID,
		BarberID:      barberID,
		OccurredAt:    time.Now().UnixMilli(),
		Appointment:   appointment,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to publish appointment event", "event_type", eventType, "appointment_id", appointmentID, "error", err)
	}
}
