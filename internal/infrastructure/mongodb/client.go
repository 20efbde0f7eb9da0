package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"

	"logisocial/pkg/config"
	"logisocial/pkg/logger"
)

var ErrNotConnected = errors.New("mongodb: not connected")

// Pinger is the part of *mongo.Client that Ready needs.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Client owns the shared driver client. Ready caches the last ping result for
// pingTTL so the availability check does not cost a round trip per request.
type Client struct {
	client  *mongo.Client
	pinger  Pinger
	db      *mongo.Database
	pingTTL time.Duration
	now     func() time.Time

	pings     singleflight.Group
	mu        sync.Mutex
	closed    bool
	checkedAt time.Time
	lastErr   error
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	logger.Info("Database connected successfully: %s", cfg.Database)

	c := New(client.Database(cfg.Database), client, cfg.PingTTL)
	c.client = client
	return c, nil
}

// New wraps an existing database handle.
func New(db *mongo.Database, pinger Pinger, pingTTL time.Duration) *Client {
	return &Client{
		db:      db,
		pinger:  pinger,
		pingTTL: pingTTL,
		now:     time.Now,
	}
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ready reports the cached ping result while it is fresh. Once it expires,
// one caller pings and concurrent callers share that result; the lock is
// never held across the round trip.
func (c *Client) Ready(ctx context.Context) error {
	if c == nil {
		return ErrNotConnected
	}

	if fresh, err := c.cached(); fresh {
		return err
	}

	_, err, _ := c.pings.Do("ping", func() (interface{}, error) {
		// A flight that started after ours finished may already have refreshed it.
		if fresh, err := c.cached(); fresh {
			return nil, err
		}

		pingCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()

		err := c.pinger.Ping(pingCtx, readpref.Primary())
		if err != nil {
			logger.Warn("Database ping failed: %v", err)
		}

		c.mu.Lock()
		c.lastErr = err
		c.checkedAt = c.now()
		c.mu.Unlock()
		return nil, err
	})
	return err
}

// cached reports whether the last ping result can be used as is, and that
// result. A closed client or one without a pinger is never connected.
func (c *Client) cached() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.pinger == nil {
		return true, ErrNotConnected
	}
	if !c.checkedAt.IsZero() && c.now().Sub(c.checkedAt) < c.pingTTL {
		return true, c.lastErr
	}
	return false, nil
}

func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb: disconnect: %w", err)
	}
	logger.Info("Database connection closed")
	return nil
}
