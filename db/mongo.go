package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// VisitorCollection keeps the collection name existing deployments write to
const VisitorCollection = "visitoLogs"

// NewMongo connects to MongoDB and verifies the connection with a ping
func NewMongo(ctx context.Context, uri, database string) (*mongo.Collection, error) {
	if uri == "" {
		return nil, errors.New("mongo requires a connection string")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB, %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB, %w", err)
	}

	return client.Database(database).Collection(VisitorCollection), nil
}
