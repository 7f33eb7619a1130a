package cli

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cqltour/go-cqltour/cqltable"
)

// fileConfig is the TOML shape of the optional config file.
//
//	addresses = ["10.0.0.1", "10.0.0.2"]
//	port = 9042
//	keyspace = "cqltour"
//	consistency = "ONE"
//	replication_factor = 1
//	timeout = "5s"
//	auth = true
//	username = "learner"
//	password = "secret"
type fileConfig struct {
	Addresses         []string `toml:"addresses"`
	Port              int      `toml:"port"`
	Keyspace          string   `toml:"keyspace"`
	Consistency       string   `toml:"consistency"`
	ReplicationFactor int      `toml:"replication_factor"`
	Auth              bool     `toml:"auth"`
	Username          string   `toml:"username"`
	Password          string   `toml:"password"`
	Timeout           duration `toml:"timeout"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// clientConfig resolves the session config: defaults, overlaid
// with the config file if one is given, overlaid with flags.
func (opts *rootOptions) clientConfig() (cqltable.Config, error) {
	cfg := cqltable.DefaultConfig()

	if opts.configPath != "" {
		var file fileConfig
		if _, err := toml.DecodeFile(opts.configPath, &file); err != nil {
			return cqltable.Config{}, fmt.Errorf("reading config file %s: %w", opts.configPath, err)
		}
		if len(file.Addresses) > 0 {
			cfg.Addresses = file.Addresses
		}
		if file.Port != 0 {
			cfg.Port = file.Port
		}
		if file.Keyspace != "" {
			cfg.Keyspace = file.Keyspace
		}
		if file.Consistency != "" {
			cfg.Consistency = file.Consistency
		}
		if file.ReplicationFactor != 0 {
			cfg.ReplicationFactor = file.ReplicationFactor
		}
		if file.Timeout.Duration != 0 {
			cfg.Timeout = file.Timeout.Duration
		}
		cfg.Auth = file.Auth
		cfg.Username = file.Username
		cfg.Password = file.Password
	}

	if len(opts.hosts) > 0 {
		cfg.Addresses = opts.hosts
	}
	if opts.keyspace != "" {
		cfg.Keyspace = opts.keyspace
	}
	return cfg, nil
}
