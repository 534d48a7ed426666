package barbers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"barberagenda/pkg/config"
	dbmongo "barberagenda/pkg/db/mongo"
	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/model"
)

type Service interface {
	Create(ctx context.Context, payload *model.BarberCreate) (*model.Barber, error)
	GetByID(ctx context.Context, id string) (*model.Barber, error)
	GetAll(ctx context.Context) ([]*model.Barber, error)
	Update(ctx context.Context, id string, updates *model.BarberUpdate) (*model.Barber, error)
	Delete(ctx context.Context, id string) error
}

type barberService struct {
	repo Repository
	cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &barberService{repo: repo, cfg: cfg}
}

func (s *barberService) Create(ctx context.Context, payload *model.BarberCreate) (*model.Barber, error) {
	if payload.Name == "" {
		return nil, apperrors.InvalidInput("Name is required")
	}

	barber := &model.Barber{
		BarberID:    uuid.NewString(),
		Name:        payload.Name,
		Specialties: payload.Specialties,
		PhotoURL:    payload.PhotoURL,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if barber.Specialties == nil {
		barber.Specialties = []string{}
	}
	if payload.Rating != nil {
		barber.Rating = *payload.Rating
	}

	if err := s.repo.Insert(ctx, barber); err != nil {
		s.cfg.Log.Error("Failed to create barber", "error", err)
		return nil, apperrors.Internal("Failed to create barber", err)
	}

	s.cfg.Log.Info("Barber created successfully", "barber_id", barber.BarberID)
	return barber, nil
}

func (s *barberService) GetByID(ctx context.Context, id string) (*model.Barber, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("barberId is required")
	}

	barber, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Barber")
		}
		return nil, apperrors.Internal("Failed to get barber", err)
	}
	return barber, nil
}

func (s *barberService) GetAll(ctx context.Context) ([]*model.Barber, error) {
	barbers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list barbers", "error", err)
		return nil, apperrors.Internal("Failed to get barbers", err)
	}
	return barbers, nil
}

func (s *barberService) Update(ctx context.Context, id string, updates *model.BarberUpdate) (*model.Barber, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("barberId is required")
	}

	// Fixed enumeration order, independent of request-body order.
	set := dbmongo.NewSetBuilder()
	if updates.Name != nil {
		set.Set("name", *updates.Name)
	}
	if updates.Specialties != nil {
		set.Set("specialties", *updates.Specialties)
	}
	if updates.Rating != nil {
		set.Set("rating", *updates.Rating)
	}
	if updates.PhotoURL != nil {
		set.Set("photo_url", *updates.PhotoURL)
	}

	if set.Empty() {
		return nil, apperrors.InvalidInput("No valid fields to update")
	}

	barber, err := s.repo.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Barber")
		}
		s.cfg.Log.Error("Failed to update barber", "barber_id", id, "error", err)
		return nil, apperrors.Internal("Failed to update barber", err)
	}

	s.cfg.Log.Info("Barber updated successfully", "barber_id", id)
	return barber, nil
}

func (s *barberService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("barberId is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NotFound("Barber")
		}
		s.cfg.Log.Error("Failed to delete barber", "barber_id", id, "error", err)
		return apperrors.Internal("Failed to delete barber", err)
	}

	s.cfg.Log.Info("Barber deleted successfully", "barber_id", id)
	return nil
}
