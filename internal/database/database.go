package database

import (
	"context"
	"log"
	"time"

	"studio-crm/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// MongodbDB wraps the optional remote document store. DB is nil when no
// MONGO_URI is configured; callers must treat that as "mirroring disabled".
type MongodbDB struct {
	DB *mongo.Database
}

// Enabled reports whether a remote connection exists.
func (m *MongodbDB) Enabled() bool {
	return m != nil && m.DB != nil
}

// NewDatabase creates a new MongoDB database connection with lifecycle management.
// The remote store is strictly optional: without a URI the app runs local-only.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*MongodbDB, error) {
	if cfg.MongoURI == "" {
		log.Println("No MONGO_URI configured, remote mirror disabled")
		return &MongodbDB{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB!")

	db := client.Database(cfg.DBName)

	// Register lifecycle hooks
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Disconnecting from MongoDB...")
			return client.Disconnect(ctx)
		},
	})

	return &MongodbDB{DB: db}, nil
}
