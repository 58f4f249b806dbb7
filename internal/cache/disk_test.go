package cache

import (
	"testing"
	"time"
)

func TestDiskCache_SetGet(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := YearKey(1914)
	if err := c.Set(key, []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatalf("expected hit")
	}
	if string(got) != "payload" {
		t.Errorf("got %q", got)
	}
}

func TestDiskCache_Miss(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if _, found := c.Get(YearKey(2000)); found {
		t.Errorf("expected miss")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := YearKey(1939)
	if err := c.Set(key, []byte("old"), time.Nanosecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Errorf("expected expired entry to miss")
	}
}

func TestDiskCache_DeleteAndClear(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	a, b := YearKey(1914), YearKey(1939)
	_ = c.Set(a, []byte("a"), 0)
	_ = c.Set(b, []byte("b"), 0)

	if err := c.Delete(a); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get(a); found {
		t.Errorf("deleted key still present")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := c.Get(b); found {
		t.Errorf("cleared key still present")
	}
}

func TestLayeredCache_Promotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Hour, dir, time.Hour)

	key := YearKey(1970)
	if err := c.Set(key, []byte("layered"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// Fresh layered cache over the same dir: memory is cold, disk warm.
	c2 := NewLayeredCache(time.Hour, dir, time.Hour)
	got, found := c2.Get(key)
	if !found {
		t.Fatalf("expected disk hit")
	}
	if string(got) != "layered" {
		t.Errorf("got %q", got)
	}

	// Promoted copy must now be in the memory tier.
	if _, found := c2.memory.Get(key); !found {
		t.Errorf("expected promotion to memory tier")
	}
}

func TestYearKey_StableAndPrefixed(t *testing.T) {
	a := YearKey(1914)
	b := YearKey(1914)
	if a != b {
		t.Errorf("key not stable: %q vs %q", a, b)
	}
	if YearKey(1915) == a {
		t.Errorf("distinct years share a key")
	}
	if len(a) < len("chronomap:v1:") || a[:len("chronomap:v1:")] != "chronomap:v1:" {
		t.Errorf("missing version prefix: %q", a)
	}
}

func TestMemoryCache_TTL(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, time.Minute)

	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	if _, found := c.Get("k"); !found {
		t.Fatalf("expected hit before expiry")
	}

	time.Sleep(25 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Errorf("expected miss after expiry")
	}
}
