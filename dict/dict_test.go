// Copyright 2026 Abydos Authors.
// All rights reserved.

package dict

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("banana", "apple")

	check := func(want []string) {
		t.Helper()
		got, err := m.Names(ctx)
		if err != nil {
			t.Fatalf("Names failed: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Names returned wrong list (-want +got):\n%s", diff)
		}
	}

	check([]string{"apple", "banana"})

	if err := m.Add(ctx, "cherry"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	check([]string{"apple", "banana", "cherry"})

	// Adding an existing name shouldn't duplicate it.
	if err := m.Add(ctx, "apple"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	check([]string{"apple", "banana", "cherry"})

	if err := m.Remove(ctx, "banana"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := m.Remove(ctx, "missing"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	check([]string{"apple", "cherry"})
}
