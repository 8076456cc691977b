package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestNewFavoritesStore(t *testing.T) {
	store := NewFavoritesStore()
	if store == nil {
		t.Fatal("NewFavoritesStore() returned nil")
	}
	list, _ := store.List(context.Background())
	if len(list) != 0 {
		t.Errorf("NewFavoritesStore() should start empty, got %v", len(list))
	}
	if store.Backend() != "memory" {
		t.Errorf("Backend() = %q, want memory", store.Backend())
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewFavoritesStore()

	for _, d := range []string{"go.dev", "ab.cd", "zz.top"} {
		added, err := store.Add(ctx, d)
		if err != nil {
			t.Fatalf("Add(%q) error = %v", d, err)
		}
		if !added {
			t.Errorf("Add(%q) = false, want true", d)
		}
	}

	list, _ := store.List(ctx)
	want := []string{"go.dev", "ab.cd", "zz.top"}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, list[i], want[i])
		}
	}
	if store.UpdatedAt().IsZero() {
		t.Error("UpdatedAt() should be set after Add")
	}
}

func TestAddDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewFavoritesStore()

	_, _ = store.Add(ctx, "go.dev")
	added, _ := store.Add(ctx, "go.dev")
	if added {
		t.Error("Add() of existing favorite should return false")
	}
	if store.Count() != 1 {
		t.Errorf("Count() = %d, want 1", store.Count())
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := NewFavoritesStore()

	_, _ = store.Add(ctx, "a.b")
	_, _ = store.Add(ctx, "c.d")
	_, _ = store.Add(ctx, "e.f")

	removed, _ := store.Remove(ctx, "c.d")
	if !removed {
		t.Error("Remove() of existing favorite should return true")
	}

	removed, _ = store.Remove(ctx, "c.d")
	if removed {
		t.Error("Remove() of missing favorite should return false")
	}

	list, _ := store.List(ctx)
	if len(list) != 2 || list[0] != "a.b" || list[1] != "e.f" {
		t.Errorf("List() after Remove = %v, want [a.b e.f]", list)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewFavoritesStore()
	_, _ = store.Add(ctx, "a.b")

	snapshot, _ := store.List(ctx)
	snapshot[0] = "mutated"

	list, _ := store.List(ctx)
	if list[0] != "a.b" {
		t.Errorf("List() should return a copy, got %q", list[0])
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewFavoritesStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = store.Add(ctx, fmt.Sprintf("d%d.com", n%10))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	if store.Count() != 10 {
		t.Errorf("Count() after concurrent adds = %d, want 10", store.Count())
	}
}
