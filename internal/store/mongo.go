package store

import (
	"bitwise74/visitor-api/internal/model"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores visitors as documents in a single collection
type Mongo struct {
	C   *mongo.Collection
	now func() time.Time
}

func NewMongo(c *mongo.Collection) *Mongo {
	return &Mongo{C: c, now: time.Now}
}

func (m *Mongo) Insert(ctx context.Context, v *model.Visitor) error {
	if err := prepare(v, m.now); err != nil {
		return err
	}

	if _, err := m.C.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to insert visitor, %w", err)
	}

	return nil
}

func (m *Mongo) List(ctx context.Context) ([]model.Visitor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cur, err := m.C.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitors, %w", err)
	}

	visitors := []model.Visitor{}
	if err := cur.All(ctx, &visitors); err != nil {
		return nil, fmt.Errorf("failed to decode visitors, %w", err)
	}

	return visitors, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.C.Database().Client().Disconnect(ctx)
}
