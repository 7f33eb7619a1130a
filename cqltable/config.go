// Package cqltable connects the result-set view abstraction to
// Apache Cassandra via the gocql driver: session configuration,
// statement execution, and materializing query results as views
// with column kinds derived from the driver's type codes.
package cqltable

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

// Config for a Cassandra session.
type Config struct {
	// Addresses are hostnames or IPs of Cassandra instances.
	Addresses []string
	// Port that Cassandra is running on.
	Port int
	// Keyspace to use.
	Keyspace string
	// Consistency level name, e.g. "QUORUM" or "ONE".
	Consistency string
	// ReplicationFactor used when creating the keyspace.
	ReplicationFactor int
	// DisableInitialHostLookup instructs the driver to not
	// attempt to get host info from the system.peers table.
	DisableInitialHostLookup bool
	// Auth enables password authentication.
	Auth     bool
	Username string
	Password string
	// Timeout for driver operations.
	Timeout time.Duration
}

// DefaultConfig returns a Config for a single local Cassandra
// node with the defaults a fresh tour expects.
func DefaultConfig() Config {
	return Config{
		Addresses:         []string{"127.0.0.1"},
		Port:              9042,
		Keyspace:          "cqltour",
		Consistency:       "QUORUM",
		ReplicationFactor: 1,
		Timeout:           5 * time.Second,
	}
}

func (cfg Config) clusterConfig(keyspace string) (*gocql.ClusterConfig, error) {
	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, fmt.Errorf("invalid consistency %q: %w", cfg.Consistency, err)
	}

	cluster := gocql.NewCluster(cfg.Addresses...)
	cluster.Port = cfg.Port
	cluster.Keyspace = keyspace
	cluster.Consistency = consistency
	cluster.Timeout = cfg.Timeout
	cluster.DisableInitialHostLookup = cfg.DisableInitialHostLookup
	if cfg.Auth {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	return cluster, nil
}

// CreateKeyspace creates the configured keyspace if it doesn't exist,
// connecting through the system keyspace.
func (cfg Config) CreateKeyspace(ctx context.Context) error {
	cluster, err := cfg.clusterConfig("system")
	if err != nil {
		return err
	}
	session, err := cluster.CreateSession()
	if err != nil {
		return fmt.Errorf("connecting to system keyspace: %w", err)
	}
	defer session.Close()

	err = session.Query(fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s
		 WITH replication = {
			 'class' : 'SimpleStrategy',
			 'replication_factor' : %d
		 }`,
		cfg.Keyspace, cfg.ReplicationFactor)).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("creating keyspace %q: %w", cfg.Keyspace, err)
	}
	return nil
}

// Session creates a gocql session for the configured keyspace.
func (cfg Config) Session() (*gocql.Session, error) {
	cluster, err := cfg.clusterConfig(cfg.Keyspace)
	if err != nil {
		return nil, err
	}
	return cluster.CreateSession()
}
