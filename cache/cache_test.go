package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, "test:", 5*time.Minute), mr
}

func TestGetMiss(t *testing.T) {
	c, _ := setupTestCache(t)

	var out []string
	hit, err := c.Get(context.Background(), "nothing", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("expected miss for absent key")
	}

	stats := c.GetStats()
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
}

func TestSetThenGet(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	in := []row{{1, "Clay Vase"}, {2, "Jute Rug"}}

	if err := c.Set(ctx, ProductPrefix+"list", in); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var out []row
	hit, err := c.Get(ctx, ProductPrefix+"list", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if len(out) != 2 || out[0].Name != "Clay Vase" {
		t.Errorf("got %+v, want the stored rows back", out)
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Sets != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 set", stats)
	}
}

func TestDelete(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var out string
	hit, err := c.Get(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("expected miss after Delete")
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	keys := []string{ProductPrefix + "list:a", ProductPrefix + "list:b", CategoryPrefix + "list"}
	for _, k := range keys {
		if err := c.Set(ctx, k, "v"); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	if err := c.InvalidatePrefix(ctx, ProductPrefix); err != nil {
		t.Fatalf("InvalidatePrefix() error = %v", err)
	}

	var out string
	for _, k := range keys[:2] {
		if hit, _ := c.Get(ctx, k, &out); hit {
			t.Errorf("key %q survived invalidation", k)
		}
	}
	// Other prefixes stay untouched.
	if hit, _ := c.Get(ctx, CategoryPrefix+"list", &out); !hit {
		t.Error("category key was wrongly invalidated")
	}
}

func TestEntryExpires(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	mr.FastForward(6 * time.Minute)

	var out string
	hit, err := c.Get(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("expected expired entry to miss")
	}
}
