package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoConnector establishes a single client on first use and hands the same
// database back on every later call.
type MongoConnector struct {
	uri            string
	database       string
	connectTimeout time.Duration
	logger         *zerolog.Logger

	once   sync.Once
	client *mongo.Client
	err    error
}

// NewMongoConnector creates a connector. Nothing is dialled until Database is called.
func NewMongoConnector(logger *zerolog.Logger, uri, database string, connectTimeout time.Duration) *MongoConnector {
	return &MongoConnector{
		uri:            uri,
		database:       database,
		connectTimeout: connectTimeout,
		logger:         logger,
	}
}

// Database connects if needed and returns the configured database.
// A failed first attempt is sticky; the process is expected to exit on it.
func (c *MongoConnector) Database(ctx context.Context) (*mongo.Database, error) {
	c.once.Do(func() {
		c.client, c.err = c.connect(ctx)
	})
	if c.err != nil {
		return nil, c.err
	}

	return c.client.Database(c.database), nil
}

func (c *MongoConnector) connect(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	c.logger.Info().Str("database", c.database).Msg("connected to mongo")

	return client, nil
}

// Disconnect closes the client if one was opened.
func (c *MongoConnector) Disconnect(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	return c.client.Disconnect(ctx)
}
