package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !IsValidID(id) {
			t.Fatalf("generated id %q is not a valid id", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"65a1b2c3d4e5f6a7b8c9d0e1", true},
		{"65A1B2C3D4E5F6A7B8C9D0E1", true},
		{"65a1b2c3d4e5f6a7b8c9d0e", false},
		{"65a1b2c3d4e5f6a7b8c9d0e12", false},
		{"zza1b2c3d4e5f6a7b8c9d0e1", false},
		{"", false},
		{"not-an-id", false},
	}

	for _, tt := range tests {
		if got := IsValidID(tt.id); got != tt.want {
			t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestNewTransaction_DefaultsToUncategorized(t *testing.T) {
	txn, err := NewTransaction(decimal.NewFromInt(10), testDate(), "Coffee", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.CategoryID != UncategorizedCategoryID {
		t.Errorf("expected category %q, got %q", UncategorizedCategoryID, txn.CategoryID)
	}
	if !txn.IsUncategorized() {
		t.Error("expected transaction to be uncategorized")
	}
}
