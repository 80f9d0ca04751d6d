package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Error("Get(missing) hit, want miss")
	}

	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(data) != "payload" {
		t.Errorf("Get = (%q, %v), want (payload, true)", data, ok)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get after Delete hit, want miss")
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatal("Get before expiry miss, want hit")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get after expiry hit, want miss")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache.Get hit, want miss")
	}
}

func TestKey(t *testing.T) {
	a := Key("preview", "latex", "revtex", 300)
	b := Key("preview", "latex", "revtex", 300)
	if a != b {
		t.Errorf("Key not deterministic: %q != %q", a, b)
	}

	c := Key("preview", "latex", "revtex", 150)
	if a == c {
		t.Error("Key collision for different parts")
	}

	if got, want := a[:8], "preview:"; got != want {
		t.Errorf("Key prefix = %q, want %q", got, want)
	}
}
