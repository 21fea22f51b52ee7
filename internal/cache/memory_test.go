package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	type row struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	want := []row{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	if err := c.Set(ctx, "rows:u1", want, time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	var got []row
	if err := c.Get(ctx, "rows:u1", &got); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemory()

	var dest string
	err := c.Get(context.Background(), "absent", &dest)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get(absent) = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", -time.Second); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	var dest string
	if err := c.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expired Get() = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "k", "v", time.Minute)
	c.Delete(ctx, "k")

	var dest string
	if err := c.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("deleted Get() = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheDeletePrefix(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "goals:u1", "a", time.Minute)
	c.Set(ctx, "goals:u2", "b", time.Minute)
	c.Set(ctx, "time_entries:u1", "c", time.Minute)

	if err := c.DeletePrefix(ctx, "goals:u1"); err != nil {
		t.Fatalf("DeletePrefix() error: %v", err)
	}

	var dest string
	if err := c.Get(ctx, "goals:u1", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("goals:u1 should be gone, got %v", err)
	}
	if err := c.Get(ctx, "goals:u2", &dest); err != nil {
		t.Errorf("goals:u2 should survive, got %v", err)
	}
	if err := c.Get(ctx, "time_entries:u1", &dest); err != nil {
		t.Errorf("time_entries:u1 should survive, got %v", err)
	}
}
