package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k1", []byte("artifact"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v", ok, err)
	}
	if string(data) != "artifact" {
		t.Errorf("Get() = %q, want artifact", data)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	_, ok, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok {
		t.Error("Get() hit for missing key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	ctx := context.Background()

	if err := c.Set(ctx, "k1", []byte("short-lived"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok {
		t.Error("expired entry returned as hit")
	}
}

func TestFileCacheDeleteMissingKey(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	if err := c.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete() on missing key = %v, want nil", err)
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestArtifactKeyStability(t *testing.T) {
	a := ArtifactKey("deadbeef", "markup")
	b := ArtifactKey("deadbeef", "markup")
	if a != b {
		t.Error("same inputs produced different keys")
	}
	if a == ArtifactKey("deadbeef", "html") {
		t.Error("different formats collided")
	}
	if a == ArtifactKey("cafebabe", "markup") {
		t.Error("different hashes collided")
	}
}

func TestHashIsHexSHA256(t *testing.T) {
	h := Hash([]byte("hello"))
	if len(h) != 64 {
		t.Errorf("Hash() length = %d, want 64", len(h))
	}
	if h != Hash([]byte("hello")) {
		t.Error("hash not deterministic")
	}
}
