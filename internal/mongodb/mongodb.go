// Package mongodb owns the shared MongoDB client: a single pooled connection
// established once at process start and torn down once at process stop.
// Every storage operation in the service goes through this client.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/deepblocks/auth-service/internal/logger"
)

// ErrNotConnected is returned when a caller asks for the database before
// Connect has succeeded.
var ErrNotConnected = errors.New("mongodb: not connected")

// Client wraps the driver client with the target database and config.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    Config
	log    *logger.Logger
}

// NewClient creates an unconnected Client. Callers may hand it to
// repositories immediately; operations fail with ErrNotConnected until
// Connect succeeds.
func NewClient(cfg Config, log *logger.Logger) *Client {
	cfg.ApplyDefaults()
	return &Client{cfg: cfg, log: log.WithComponent("mongodb")}
}

// Connect establishes the driver client and verifies the deployment is
// reachable with a ping. The driver connects lazily, so the ping is what
// actually fails fast when the store is down.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}

	opts := options.Client().
		ApplyURI(c.cfg.URI).
		SetServerSelectionTimeout(c.cfg.serverSelectionTimeout()).
		SetConnectTimeout(c.cfg.connectTimeout()).
		SetMaxPoolSize(c.cfg.MaxPoolSize)

	client, err := mongo.Connect(opts)
	if err != nil {
		return fmt.Errorf("mongodb: connect: %w", err)
	}

	c.client = client
	c.db = client.Database(c.cfg.Database)

	if err := c.Ping(ctx); err != nil {
		// Best-effort teardown of the half-open client.
		_ = client.Disconnect(ctx)
		c.client = nil
		c.db = nil
		return fmt.Errorf("mongodb: ping: %w", err)
	}

	c.log.Info("MongoDB connected", map[string]interface{}{
		"database":  c.cfg.Database,
		"pool_size": c.cfg.MaxPoolSize,
	})
	return nil
}

// Database returns the target database handle.
func (c *Client) Database() (*mongo.Database, error) {
	if c == nil || c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

// Collection returns a collection handle in the target database.
func (c *Client) Collection(name string) (*mongo.Collection, error) {
	db, err := c.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping verifies the deployment is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrNotConnected
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client and releases pooled connections.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb: disconnect: %w", err)
	}
	c.log.Info("MongoDB connection closed")
	c.client = nil
	c.db = nil
	return nil
}
