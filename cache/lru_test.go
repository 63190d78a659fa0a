// Copyright 2025 Abydos Authors.
// All rights reserved.

package cache

import (
	"runtime"
	"testing"
)

func TestLRU(t *testing.T) {
	lru := NewLRU[string](2)

	// ln returns the caller's caller's line number.
	ln := func(skip int) int {
		_, _, line, _ := runtime.Caller(skip + 1)
		return line
	}

	// Gross convenience functions for calling methods and checking results.
	set := func(key, val string) { lru.Set(key, val) }
	get := func(key string, wantVal string, wantOK bool) {
		if val, ok := lru.Get(key); val != wantVal || ok != wantOK {
			t.Errorf("L%d: Get(%q) = %q, %v; want %q, %v", ln(1), key, val, ok, wantVal, wantOK)
		}
	}
	testAndSet := func(key, val string, test func(string) bool, want bool) {
		if ok := lru.TestAndSet(key, val, test); ok != want {
			t.Errorf("L%d: TestAndSet(%q, %q, ...) = %v; want %v", ln(1), key, val, ok, want)
		}
	}

	const (
		k1 = "k1"
		k2 = "k2"
		k3 = "k3"
	)

	// Set and update a key.
	get(k1, "", false)
	set(k1, "foo")
	get(k1, "foo", true)
	set(k1, "bar")
	get(k1, "bar", true)

	// Set a second key and check that the first is still there.
	get(k2, "", false)
	set(k2, "smith")
	get(k2, "smith", true)
	get(k1, "bar", true)

	// Set a third key, which should evict the second key since it was accessed the longest ago.
	set(k3, "jones")
	get(k1, "bar", true)
	get(k2, "", false)
	get(k3, "jones", true)

	// Check that TestAndSet only sets when the test function returns true.
	testAndSet(k1, "baz", func(v string) bool { return v == "bogus" }, false)
	get(k1, "bar", true)
	testAndSet(k1, "baz", func(v string) bool { return v == "bar" }, true)
	get(k1, "baz", true)

	// TestAndSet should set without calling the test function when the key isn't present.
	testAndSet(k2, "brown", func(v string) bool {
		t.Error("called unexpectedly")
		return false
	}, true)
	get(k2, "brown", true)
	get(k3, "", false) // should've been evicted
}

func TestLRU_GetOrSet(t *testing.T) {
	lru := NewLRU[int](2)

	calls := 0
	make7 := func() int { calls++; return 7 }
	if v := lru.GetOrSet("k1", make7); v != 7 {
		t.Errorf("GetOrSet(k1) = %v; want 7", v)
	}
	// The second call should return the cached value without calling make.
	if v := lru.GetOrSet("k1", make7); v != 7 {
		t.Errorf("GetOrSet(k1) = %v; want 7", v)
	}
	if calls != 1 {
		t.Errorf("make called %d times; want 1", calls)
	}

	// Fill the cache and check that k1 gets evicted and remade.
	lru.GetOrSet("k2", func() int { return 2 })
	lru.GetOrSet("k3", func() int { return 3 })
	if _, ok := lru.Get("k1"); ok {
		t.Error("k1 wasn't evicted")
	}
	if v := lru.GetOrSet("k1", make7); v != 7 || calls != 2 {
		t.Errorf("GetOrSet(k1) = %v (%d calls); want 7 (2 calls)", v, calls)
	}
}
