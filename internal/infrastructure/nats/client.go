// SPDX-License-Identifier: MIT

// Package nats is the ops event bus client (spec §4.11, §6
// ETL_EVENTS_URL): the ETL Orchestrator publishes a fire-and-forget
// JSON event when a run starts, as each step finishes, and when the run
// completes. It is a trimmed-down
// version of the teacher's NATS client, keeping connection lifecycle
// and async publish but dropping JetStream key-value storage, which
// served committee persistence that has no equivalent here.
package nats

import (
	"context"
	"log/slog"
	"time"

	natsgo "github.com/nats-io/nats.go"

	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// Config configures the connection to the ops event bus.
type Config struct {
	URL           string
	Timeout       time.Duration
	MaxReconnect  int
	ReconnectWait time.Duration
}

// DefaultConfig returns sane reconnect/timeout defaults for a
// best-effort operational side channel: the ETL run must never block or
// fail because the event bus is unreachable.
func DefaultConfig(url string) Config {
	return Config{
		URL:           url,
		Timeout:       5 * time.Second,
		MaxReconnect:  5,
		ReconnectWait: 2 * time.Second,
	}
}

// Client wraps a NATS connection used only to publish ETL step events.
type Client struct {
	conn *natsgo.Conn
}

// Connect establishes the connection. A failure here is non-fatal to
// the orchestrator; callers should log and continue without events.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, apperrors.NewConfig("ETL_EVENTS_URL", "NATS URL is required")
	}

	opts := []natsgo.Option{
		natsgo.Name("ilga-graph-etl"),
		natsgo.Timeout(cfg.Timeout),
		natsgo.MaxReconnects(cfg.MaxReconnect),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			slog.WarnContext(ctx, "ops event bus disconnected", "error", err)
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			slog.InfoContext(ctx, "ops event bus reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := natsgo.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, apperrors.NewConfig("ETL_EVENTS_URL", "failed to connect to ops event bus", err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the connection; it does not drain it first.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// IsReady reports whether the connection is currently usable.
func (c *Client) IsReady() bool {
	return c.conn != nil && c.conn.IsConnected()
}
