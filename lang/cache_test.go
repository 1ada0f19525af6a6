package lang

import (
	"sync"
	"testing"
)

func TestCache_GetOrCompile_CachesResult(t *testing.T) {
	c := NewCache(0)

	expr1, err := c.GetOrCompile("1 + 1")
	if err != nil {
		t.Fatalf("GetOrCompile failed: %v", err)
	}

	expr2, err := c.GetOrCompile("1 + 1")
	if err != nil {
		t.Fatalf("GetOrCompile failed: %v", err)
	}

	if expr1 != expr2 {
		t.Error("expected the same *Expression pointer on a cache hit")
	}

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_GetOrCompile_DefaultCapacity(t *testing.T) {
	c := NewCache(-1)

	if c.capacity != DefaultCacheCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCacheCapacity)
	}
}

func TestCache_GetOrCompile_PropagatesCompileError(t *testing.T) {
	c := NewCache(0)

	_, err := c.GetOrCompile("1 +")
	if err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestCache_EvictsAtCapacity(t *testing.T) {
	c := NewCache(4)

	for i := 0; i < 20; i++ {
		src := "1 + " + string(rune('0'+i%10))

		if _, err := c.GetOrCompile(src); err != nil {
			t.Fatalf("GetOrCompile(%q) failed: %v", src, err)
		}
	}

	if c.Len() > 4 {
		t.Errorf("Len() = %d, want at most 4", c.Len())
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache(8)

	if _, err := c.GetOrCompile("1 + 1"); err != nil {
		t.Fatalf("GetOrCompile failed: %v", err)
	}

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear(), want 0", c.Len())
	}
}

func TestCache_ConcurrentGetOrCompile_SingleCompile(t *testing.T) {
	c := NewCache(0)

	const goroutines = 50

	var wg sync.WaitGroup

	results := make([]*Expression, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			expr, err := c.GetOrCompile("3 * 3")
			if err != nil {
				t.Errorf("GetOrCompile failed: %v", err)
			}

			results[i] = expr
		}(i)
	}

	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Error("expected all concurrent callers to observe the same compiled Expression")
		}
	}
}
