package main

import (
	"strings"
	"testing"
)

func TestRun_StartupFailuresAreReturned(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid configuration",
			env:     map[string]string{"DATABASE_DRIVER": "mysql"},
			wantErr: "invalid configuration",
		},
		{
			name: "unreachable redis after the database is open",
			env: map[string]string{
				"DATABASE_DRIVER":    "sqlite",
				"DATABASE_URL":       "file::memory:",
				"DB_MAX_OPEN_CONNS":  "1",
				"RATE_LIMIT_BACKEND": "redis",
				"REDIS_URL":          "redis://127.0.0.1:1/0",
			},
			wantErr: "redis connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			err := run()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
