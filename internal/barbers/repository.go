package barbers

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

var ErrNotFound = errors.New("barber not found")

type Repository interface {
	Insert(ctx context.Context, barber *model.Barber) error
	FindByID(ctx context.Context, id string) (*model.Barber, error)
	FindAll(ctx context.Context) ([]*model.Barber, error)
	UpdateByID(ctx context.Context, id string, set *dbmongo.SetBuilder) (*model.Barber, error)
	Delete(ctx context.Context, id string) error
}

type mongoRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewRepository(cfg *config.Config) Repository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRepository{
		cfg:        cfg,
		collection: db.Collection(cfg.BarbersCollection),
	}
}

func (r *mongoRepository) Insert(ctx context.Context, barber *model.Barber) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("failed to insert barber: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*model.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var barber model.Barber
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&barber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find barber: %w", err)
	}
	return &barber, nil
}

// FindAll is an unconditional scan of the collection. No pagination; the
// result set is unbounded by contract.
func (r *mongoRepository) FindAll(ctx context.Context) ([]*model.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find barbers: %w", err)
	}
	defer cursor.Close(ctx)

	barbers := []*model.Barber{}
	if err = cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("failed to decode barbers: %w", err)
	}
	return barbers, nil
}

func (r *mongoRepository) UpdateByID(ctx context.Context, id string, set *dbmongo.SetBuilder) (*model.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var barber model.Barber
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, set.Document(), opts).Decode(&barber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update barber: %w", err)
	}
	return &barber, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete barber: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
