// Copyright 2026 Abydos Authors.
// All rights reserved.

// Package dict provides dictionaries of candidate names for matching.
package dict

import (
	"context"
	"sort"
	"sync"
)

// Dict holds a set of candidate names.
type Dict interface {
	// Names returns all names in the dictionary, sorted.
	Names(ctx context.Context) ([]string, error)
	// Add inserts a name. Adding a present name is a no-op.
	Add(ctx context.Context, name string) error
	// Remove deletes a name. Removing an absent name is a no-op.
	Remove(ctx context.Context, name string) error
}

// Memory is an in-memory Dict.
// It can be used concurrently from multiple goroutines.
type Memory struct {
	mu    sync.Mutex
	names map[string]struct{}
}

var _ Dict = (*Memory)(nil)

// NewMemory returns a Memory holding the supplied names.
func NewMemory(names ...string) *Memory {
	m := &Memory{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		m.names[n] = struct{}{}
	}
	return m
}

func (m *Memory) Names(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.names))
	for n := range m.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Add(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[name] = struct{}{}
	return nil
}

func (m *Memory) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.names, name)
	return nil
}
