package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

// remoteRoundTrip exercises a shared backend against a live server.
func remoteRoundTrip(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	key := "hexalith:test:" + Hash([]byte(t.Name()))[:12]
	defer c.Delete(ctx, key)

	if err := c.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, key)
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v; want hit", hit, err)
	}
	if !bytes.Equal(got, []byte("payload")) {
		t.Errorf("Get = %q, want payload", got)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("entry still present after Delete")
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("HEXALITH_REDIS_ADDR")
	if addr == "" {
		t.Skip("HEXALITH_REDIS_ADDR not set")
	}
	c, err := NewRedisCache(context.Background(), RedisOptions{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	remoteRoundTrip(t, c)
}

func TestMongoCache(t *testing.T) {
	uri := os.Getenv("HEXALITH_MONGO_URI")
	if uri == "" {
		t.Skip("HEXALITH_MONGO_URI not set")
	}
	c, err := NewMongoCache(context.Background(), MongoOptions{URI: uri, Collection: "cache_test"})
	if err != nil {
		t.Fatalf("NewMongoCache: %v", err)
	}
	defer c.Close()
	remoteRoundTrip(t, c)
}

func TestRemoteCacheRequiresAddress(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisOptions{}); err == nil {
		t.Error("NewRedisCache with empty address should fail")
	}
	if _, err := NewMongoCache(context.Background(), MongoOptions{}); err == nil {
		t.Error("NewMongoCache with empty uri should fail")
	}
}
