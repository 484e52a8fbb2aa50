package database

import (
	"context"
	"fmt"
	"time"

	"healthtrack-service/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoConnection(cfg config.MongoConfig) (*mongo.Client, error) {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, nil
}

// EnsureIndexes creates the unique email index on the identity collection.
// The index is what turns a duplicate registration into a conflict signal,
// so it must exist before the service accepts traffic.
func EnsureIndexes(ctx context.Context, client *mongo.Client, cfg config.MongoConfig) error {
	collection := client.Database(cfg.Database).Collection(cfg.IdentityCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create identity email index: %w", err)
	}

	return nil
}
