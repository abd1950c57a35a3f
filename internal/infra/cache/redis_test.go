package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/expense-tracker/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{
		URL: "redis://" + server.Addr() + "/0",
		DB:  2,
	})
	if err != nil {
		t.Fatalf("expected connection, got %v", err)
	}
	defer client.Close()

	if got := client.Options().DB; got != 2 {
		t.Errorf("expected DB override 2, got %d", got)
	}
	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
}

func TestNewRedisClient_Errors(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"malformed url", "://nope"},
		{"unreachable server", "redis://127.0.0.1:1/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: tt.url}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
