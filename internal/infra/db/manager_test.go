package db

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/expense-tracker/backend/config"
)

func sqliteConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		URL:            "file::memory:",
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		ConnectTimeout: time.Second,
	}
}

func TestOpen_SQLite(t *testing.T) {
	database, err := Open(context.Background(), sqliteConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if !database.HealthCheck() {
		t.Error("expected healthy connection")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Driver = "oracle"

	if _, err := Open(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestManager_ConcurrentGetOpensOnce(t *testing.T) {
	var opens atomic.Int32
	release := make(chan struct{})

	manager := NewManager(sqliteConfig(), func(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
		opens.Add(1)
		<-release
		return Open(ctx, cfg)
	})
	defer manager.Close()

	const callers = 16
	var wg sync.WaitGroup
	results := make([]*Database, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = manager.Get(context.Background())
		}(i)
	}

	// Give every caller time to join the in-flight attempt.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := opens.Load(); n != 1 {
		t.Fatalf("expected exactly one open, got %d", n)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Fatalf("caller %d got a different handle", i)
		}
	}

	again, err := manager.Get(context.Background())
	if err != nil || again != results[0] {
		t.Errorf("expected the cached handle, got %v (%v)", again, err)
	}
	if n := opens.Load(); n != 1 {
		t.Errorf("expected no reopen, got %d opens", n)
	}
}

func TestManager_FailedAttemptIsRetried(t *testing.T) {
	var opens atomic.Int32
	manager := NewManager(sqliteConfig(), func(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
		if opens.Add(1) == 1 {
			return nil, errors.New("connection refused")
		}
		return Open(ctx, cfg)
	})
	defer manager.Close()

	if _, err := manager.Get(context.Background()); err == nil {
		t.Fatal("expected the first attempt to fail")
	}
	if manager.HealthCheck() {
		t.Error("expected unhealthy before a successful connect")
	}

	if _, err := manager.Get(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if !manager.HealthCheck() {
		t.Error("expected healthy after connect")
	}
}

func TestManager_CloseResets(t *testing.T) {
	var opens atomic.Int32
	manager := NewManager(sqliteConfig(), func(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
		opens.Add(1)
		return Open(ctx, cfg)
	})

	if err := manager.Close(); err != nil {
		t.Fatalf("closing an unopened manager should be a no-op, got %v", err)
	}

	if _, err := manager.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := manager.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if manager.HealthCheck() {
		t.Error("expected unhealthy after close")
	}

	if _, err := manager.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer manager.Close()

	if n := opens.Load(); n != 2 {
		t.Errorf("expected a reconnect after close, got %d opens", n)
	}
}
