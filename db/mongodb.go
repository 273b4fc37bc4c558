package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const AddressCollection = "addresses"

type MongoRepo struct {
	Client   *mongo.Client
	DB       *mongo.Database
	AddrColl *mongo.Collection
}

// NewMongoRepo connects and pings within timeout.
func NewMongoRepo(ctx context.Context, uri, dbName string, timeout time.Duration) (*MongoRepo, error) {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	clientOpts := options.Client().ApplyURI(uri).SetConnectTimeout(timeout)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	// ping
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(ctx2, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	db := client.Database(dbName)
	return &MongoRepo{
		Client:   client,
		DB:       db,
		AddrColl: db.Collection(AddressCollection),
	}, nil
}

func (m *MongoRepo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
