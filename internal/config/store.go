package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/loco-pilot/internal/cache"
	"github.com/raphi011/loco-pilot/internal/log"
)

// Store reads and writes one config file and caches the parsed result for
// [cache.ConfigTTL].
type Store struct {
	path  string
	cache *cache.Value[Config]
}

// NewStore creates a store for the file at path. A nil clock means time.Now.
func NewStore(path string, now cache.Clock) *Store {
	return &Store{
		path:  path,
		cache: cache.New[Config](cache.ConfigTTL, now),
	}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the configuration. Read and parse failures are logged and
// yield Default(); the fallback is cached like a successful read.
func (s *Store) Load(ctx context.Context) Config {
	cfg, _ := s.cache.GetOrLoad(func() (Config, bool) {
		cfg, err := s.read(ctx)
		if err != nil {
			log.FromContext(ctx).Debug("using default configuration", "path", s.path, "error", err)
			return Default(), true
		}
		return cfg, true
	})
	return cfg
}

func (s *Store) read(ctx context.Context) (Config, error) {
	if s.path == "" {
		return Config{}, fmt.Errorf("no config path")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	for _, k := range md.Undecoded() {
		log.FromContext(ctx).Debug("ignoring unknown config key", "key", k.String())
	}
	return cfg, nil
}

// Save writes cfg to the file, creating its directory, and replaces the
// cached copy.
func (s *Store) Save(cfg Config) error {
	if s.path == "" {
		return fmt.Errorf("could not determine config directory")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	s.cache.Set(cfg)
	return nil
}

// Set applies one key/value update to the loaded configuration and saves
// it. An unknown key returns ErrUnknownKey and leaves the file untouched.
// When saving fails the updated configuration is still returned.
func (s *Store) Set(ctx context.Context, name, value string) (Config, error) {
	cfg, err := s.Load(ctx).apply(name, value)
	if err != nil {
		return cfg, err
	}
	if err := s.Save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
