package geoip

import (
	"errors"
	"testing"
)

func TestNewResolverEmptyPath(t *testing.T) {
	r, err := NewResolver("  ")
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil resolver for empty path")
	}
	if _, err := r.Lookup("203.0.113.1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Lookup() on nil resolver error = %v, want ErrUnavailable", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() on nil resolver error = %v", err)
	}
}

func TestNewResolverMissingFile(t *testing.T) {
	if _, err := NewResolver(t.TempDir() + "/missing.mmdb"); err == nil {
		t.Fatalf("expected error for missing database")
	}
}
