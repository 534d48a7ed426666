package services

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

// ServiceIDPrefix distinguishes service identifiers from other resources.
const ServiceIDPrefix = "service-"

type Service interface {
	Create(ctx context.Context, payload *model.ServiceCreate) (*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	GetAll(ctx context.Context) ([]*model.Service, error)
	Update(ctx context.Context, id string, updates *model.ServiceUpdate) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	repo      Repository
	validator *validation.Validator
	cfg       *config.Config
}

func NewService(repo Repository, validator *validation.Validator, cfg *config.Config) Service {
	return &catalogService{repo: repo, validator: validator, cfg: cfg}
}

func (s *catalogService) Create(ctx context.Context, payload *model.ServiceCreate) (*model.Service, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	service := &model.Service{
		ServiceID:       ServiceIDPrefix + uuid.NewString(),
		Title:           payload.Title,
		Name:            payload.Name,
		Description:     payload.Description,
		Price:           *payload.Price,
		Duration:        *payload.Duration,
		DurationMinutes: *payload.DurationMinutes,
		CreatedAt:       time.Now().UnixMilli(),
	}

	if err := s.repo.Insert(ctx, service); err != nil {
		s.cfg.Log.Error("Failed to create service", "error", err)
		return nil, apperrors.Internal("Failed to create service", err)
	}

	s.cfg.Log.Info("Service created successfully", "service_id", service.ServiceID)
	return service, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Service, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("serviceId is required")
	}

	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Service")
		}
		return nil, apperrors.Internal("Failed to retrieve service", err)
	}
	return service, nil
}

func (s *catalogService) GetAll(ctx context.Context) ([]*model.Service, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list services", "error", err)
		return nil, apperrors.Internal("Failed to retrieve services", err)
	}
	return services, nil
}

func (s *catalogService) Update(ctx context.Context, id string, updates *model.ServiceUpdate) (*model.Service, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("serviceId is required")
	}

	set := dbmongo.NewSetBuilder()
	if updates.Title != nil {
		set.Set("title", *updates.Title)
	}
	if updates.Name != nil {
		set.Set("name", *updates.Name)
	}
	if updates.Description != nil {
		set.Set("description", *updates.Description)
	}
	if updates.Price != nil {
		set.Set("price", *updates.Price)
	}
	if updates.Duration != nil {
		set.Set("duration", *updates.Duration)
	}
	if updates.DurationMinutes != nil {
		set.Set("duration_minutes", *updates.DurationMinutes)
	}

	// An empty field set degenerates to a no-op: return the record as-is.
	if set.Empty() {
		return s.GetByID(ctx, id)
	}

	service, err := s.repo.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Service")
		}
		s.cfg.Log.Error("Failed to update service", "service_id", id, "error", err)
		return nil, apperrors.Internal("Failed to update service", err)
	}

	s.cfg.Log.Info("Service updated successfully", "service_id", id)
	return service, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("serviceId is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete service", "service_id", id, "error", err)
		return apperrors.Internal("Failed to delete service", err)
	}

	s.cfg.Log.Info("Service deleted successfully", "service_id", id)
	return nil
}
