package db

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/expense-tracker/backend/config"
)

// Opener opens a new database connection.
type Opener func(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error)

// Manager owns the process-wide database handle. The handle is opened on
// first use and reused afterwards; concurrent first callers share a single
// connection attempt. A failed attempt is not remembered, so the next Get
// tries again.
type Manager struct {
	cfg   *config.DatabaseConfig
	open  Opener
	group singleflight.Group

	mu       sync.RWMutex
	database *Database
}

// NewManager creates a Manager. A nil opener defaults to Open.
func NewManager(cfg *config.DatabaseConfig, open Opener) *Manager {
	if open == nil {
		open = Open
	}
	return &Manager{
		cfg:  cfg,
		open: open,
	}
}

// Get returns the shared handle, connecting if needed.
func (m *Manager) Get(ctx context.Context) (*Database, error) {
	if database := m.current(); database != nil {
		return database, nil
	}

	v, err, _ := m.group.Do("connect", func() (interface{}, error) {
		if database := m.current(); database != nil {
			return database, nil
		}

		// The attempt is shared, so one caller's cancellation must not
		// fail the others.
		database, err := m.open(context.WithoutCancel(ctx), m.cfg)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.database = database
		m.mu.Unlock()
		return database, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Database), nil
}

// HealthCheck reports whether a handle is open and answering pings. It never
// opens a connection itself.
func (m *Manager) HealthCheck() bool {
	database := m.current()
	if database == nil {
		return false
	}
	return database.HealthCheck()
}

// Close tears down the handle, if any, and resets the manager so a later
// Get reconnects.
func (m *Manager) Close() error {
	m.mu.Lock()
	database := m.database
	m.database = nil
	m.mu.Unlock()

	if database == nil {
		return nil
	}
	return database.Close()
}

func (m *Manager) current() *Database {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.database
}
