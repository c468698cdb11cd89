package core

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func status(n int) HandlerFunc {
	return func(string) int { return n }
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register("test", status(0))

	h, ok := registry.Lookup("test")
	if !ok {
		t.Fatal("expected 'test' to be registered")
	}
	if got := h.Run(""); got != 0 {
		t.Errorf("expected status 0, got %d", got)
	}

	if _, ok := registry.Lookup("missing"); ok {
		t.Error("expected lookup of unregistered action to fail")
	}
}

func TestRegistryOverrideKeepsPosition(t *testing.T) {
	registry := NewRegistry()
	registry.Register("first", status(1))
	registry.Register("second", status(2))
	registry.Register("third", status(3))

	registry.Register("second", status(42))

	if registry.Len() != 3 {
		t.Fatalf("expected 3 entries after override, got %d", registry.Len())
	}
	want := []string{"first", "second", "third"}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
	h, _ := registry.Lookup("second")
	if got := h.Run(""); got != 42 {
		t.Errorf("expected overriding handler (42), got %d", got)
	}
}

func TestRegistryBatch(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFunc("a", status(1))
	registry.RegisterBatch([]Entry{
		{Name: "b", Handler: status(2)},
		{Name: "a", Handler: status(10)},
		{Name: "c", Handler: status(3)},
	})

	want := []string{"a", "b", "c"}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
	h, _ := registry.Lookup("a")
	if got := h.Run(""); got != 10 {
		t.Errorf("expected batch to override 'a', got %d", got)
	}
}

func TestRegistryEntriesIsSnapshot(t *testing.T) {
	registry := NewRegistry()
	registry.Register("a", status(1))

	entries := registry.Entries()
	entries[0].Name = "mutated"

	if _, ok := registry.Lookup("a"); !ok {
		t.Error("mutating the snapshot must not affect the registry")
	}
}

func TestUsageOf(t *testing.T) {
	if got := UsageOf(Describe("<path>", status(0))); got != "<path>" {
		t.Errorf("expected usage '<path>', got %q", got)
	}
	if got := UsageOf(status(0)); got != "" {
		t.Errorf("expected empty usage for plain handler, got %q", got)
	}
}

// TestRegistryConcurrentOperations tests concurrent access to the registry
func TestRegistryConcurrentOperations(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registry.Register("shared", status(i))
			registry.Register(fmt.Sprintf("hook-%d", i), status(i))
			_, _ = registry.Lookup("shared")
			_ = registry.Names()
		}(i)
	}
	wg.Wait()

	// One shared entry plus ten distinct ones, never a duplicate
	if registry.Len() != 11 {
		t.Fatalf("expected 11 entries, got %d", registry.Len())
	}
	seen := map[string]bool{}
	for _, name := range registry.Names() {
		if seen[name] {
			t.Fatalf("duplicate entry %q", name)
		}
		seen[name] = true
	}
}
