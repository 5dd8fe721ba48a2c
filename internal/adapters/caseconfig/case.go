// Package caseconfig provides access to a case's persisted configuration.
package caseconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile holds the case's key-value configuration.
	ConfigFile = "case.yaml"
	// EnvFile is an optional dotenv overlay with machine-specific values.
	EnvFile = "case.env"
	// JournalFile receives one line per recorded configuration change.
	JournalFile = "CaseStatus"
)

// Store implements ports.CaseStore on top of the case directory layout.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Open reads the case configuration at root. With record enabled, every
// Set is journaled to the CaseStatus file when the case is closed.
func (s *Store) Open(root string, readWrite, record bool) (ports.Case, error) {
	path := filepath.Join(root, ConfigFile)

	data, err := os.ReadFile(path) //nolint:gosec // case root is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrCaseNotFound, "caseroot", root)
		}
		return nil, zerr.Wrap(err, "failed to read case configuration")
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, zerr.Wrap(err, "failed to parse case configuration")
	}

	overlay, err := readEnvOverlay(filepath.Join(root, EnvFile))
	if err != nil {
		return nil, err
	}

	return &Case{
		root:      root,
		values:    values,
		overlay:   overlay,
		readWrite: readWrite,
		record:    record,
		logger:    s.logger,
	}, nil
}

// readEnvOverlay loads the optional dotenv file next to the configuration.
func readEnvOverlay(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	overlay, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read case environment overlay")
	}
	return overlay, nil
}

// Case is an open handle to one case's configuration.
// The overlay from case.env shadows persisted values on reads but is
// never written back.
type Case struct {
	root      string
	values    map[string]string
	overlay   map[string]string
	readWrite bool
	record    bool
	dirty     bool
	closed    bool
	journal   []string
	logger    ports.Logger
}

// Root returns the case root directory.
func (c *Case) Root() string {
	return c.root
}

// Get looks up a configuration value, preferring the environment overlay.
func (c *Case) Get(key string) (string, bool) {
	if v, ok := c.overlay[key]; ok {
		return v, true
	}
	v, ok := c.values[key]
	return v, ok
}

// Set updates a configuration value. The change is flushed on Close.
func (c *Case) Set(key, value string) error {
	if !c.readWrite {
		return zerr.With(domain.ErrReadOnlyCase, "key", key)
	}
	c.values[key] = value
	c.dirty = true
	if c.record {
		c.journal = append(c.journal, fmt.Sprintf("%s %s=%s",
			time.Now().UTC().Format(time.RFC3339), key, value))
	}
	return nil
}

// Values returns a copy of the effective configuration.
func (c *Case) Values() map[string]string {
	out := make(map[string]string, len(c.values)+len(c.overlay))
	maps.Copy(out, c.values)
	maps.Copy(out, c.overlay)
	return out
}

// Close flushes pending mutations and the change journal. It is
// idempotent; only the first call writes.
func (c *Case) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.dirty {
		data, err := yaml.Marshal(c.values)
		if err != nil {
			return zerr.Wrap(err, "failed to marshal case configuration")
		}
		path := filepath.Join(c.root, ConfigFile)
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // case files are world-readable
			return zerr.Wrap(err, "failed to write case configuration")
		}
	}

	if c.record && len(c.journal) > 0 {
		if err := c.appendJournal(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Case) appendJournal() error {
	path := filepath.Join(c.root, JournalFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // case files are world-readable
	if err != nil {
		return zerr.Wrap(err, "failed to open case journal")
	}
	defer func() { _ = f.Close() }()

	for _, line := range c.journal {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return zerr.Wrap(err, "failed to append to case journal")
		}
	}
	if err := f.Sync(); err != nil {
		return zerr.Wrap(err, "failed to sync case journal")
	}
	return nil
}
