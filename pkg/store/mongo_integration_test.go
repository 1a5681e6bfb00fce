//go:build integration

package store

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

func TestMongoStore_Integration(t *testing.T) {
	uri := os.Getenv("IDENTICON_MONGO_URI")
	if uri == "" {
		t.Skip("IDENTICON_MONGO_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, uri, "identicon_test", "artifacts")
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer s.Close()

	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	name, err := s.Save(ctx, "integration.png", payload)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "integration.png" {
		t.Errorf("Save name = %q", name)
	}

	got, err := s.Load(ctx, "integration.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Load = %v, want %v", got, payload)
	}

	// Re-saving replaces, not duplicates.
	if _, err := s.Save(ctx, "integration.png", []byte("v2")); err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	got, err = s.Load(ctx, "integration.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("Load after re-save = %q, want %q", got, "v2")
	}
}
