package cqltable

import (
	"context"

	"github.com/gocql/gocql"
)

// Client executes CQL statements on a live session.
type Client struct {
	session *gocql.Session
}

// Connect creates the configured keyspace if needed
// and opens a session for it.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.CreateKeyspace(ctx); err != nil {
		return nil, err
	}
	session, err := cfg.Session()
	if err != nil {
		return nil, err
	}
	return &Client{session: session}, nil
}

// NewClient wraps an existing session.
func NewClient(session *gocql.Session) *Client {
	return &Client{session: session}
}

// Exec runs a statement that produces no rows.
func (c *Client) Exec(ctx context.Context, stmt string, args ...any) error {
	return c.session.Query(stmt, args...).WithContext(ctx).Exec()
}

// Query runs a statement and returns its result set iterator.
func (c *Client) Query(ctx context.Context, stmt string, args ...any) Rows {
	return c.session.Query(stmt, args...).WithContext(ctx).Iter()
}

// Close closes the underlying session.
func (c *Client) Close() {
	c.session.Close()
}
