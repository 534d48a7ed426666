package appointments

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberagenda/pkg/config"
	dbmongo "barberagenda/pkg/db/mongo"
	"barberagenda/pkg/model"
)

var ErrNotFound = errors.New("appointment not found")

// TimeRange is an optional inclusive window on startTime. It is only
// applied when both bounds are present; a single bound is ignored.
type TimeRange struct {
	From *int64
	To   *int64
}

func (tr TimeRange) complete() bool {
	return tr.From != nil && tr.To != nil
}

type Repository interface {
	Insert(ctx context.Context, appointment *model.Appointment) error
	FindByKey(ctx context.Context, barberID, appointmentID string) (*model.Appointment, error)
	FindByBarber(ctx context.Context, barberID string, window TimeRange) ([]*model.Appointment, error)
	UpdateByKey(ctx context.Context, barberID, appointmentID string, set *dbmongo.SetBuilder) (*model.Appointment, error)
	DeleteByKey(ctx context.Context, barberID, appointmentID string) error
}

type mongoRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewRepository(cfg *config.Config) Repository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRepository{
		cfg:        cfg,
		collection: db.Collection(cfg.AppointmentsCollection),
	}
}

func (r *mongoRepository) Insert(ctx context.Context, appointment *model.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByKey(ctx context.Context, barberID, appointmentID string) (*model.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var appointment model.Appointment
	err := r.collection.FindOne(ctx, keyFilter(barberID, appointmentID)).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}
	return &appointment, nil
}

func (r *mongoRepository) FindByBarber(ctx context.Context, barberID string, window TimeRange) ([]*model.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"barber_id": barberID}
	if window.complete() {
		filter["start_time"] = bson.M{"$gte": *window.From, "$lte": *window.To}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []*model.Appointment{}
	if err = cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *mongoRepository) UpdateByKey(ctx context.Context, barberID, appointmentID string, set *dbmongo.SetBuilder) (*model.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment model.Appointment
	err := r.collection.FindOneAndUpdate(ctx, keyFilter(barberID, appointmentID), set.Document(), opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &appointment, nil
}

// DeleteByKey does not report whether a document was removed. Deleting
// an appointment that does not exist succeeds.
func (r *mongoRepository) DeleteByKey(ctx context.Context, barberID, appointmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, keyFilter(barberID, appointmentID)); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func keyFilter(barberID, appointmentID string) bson.M {
	return bson.M{"_id": appointmentID, "barber_id": barberID}
}
