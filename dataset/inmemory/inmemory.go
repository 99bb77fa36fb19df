//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory dataset manager, mainly for tests
// and programmatic evaluation runs.
package inmemory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
)

// New creates an empty in-memory dataset manager.
func New() *Manager {
	return &Manager{datasets: make(map[string][]*dataset.EvalItem)}
}

// Manager is an in-memory dataset.Manager. Items are stored per tag in the
// order they were added.
type Manager struct {
	mu       sync.RWMutex
	datasets map[string][]*dataset.EvalItem
}

// Add appends items to the dataset identified by tag.
func (m *Manager) Add(tag string, items ...*dataset.EvalItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasets[tag] = append(m.datasets[tag], items...)
}

// Load returns the items of the dataset identified by tag.
// Returns os.ErrNotExist if the tag was never added.
func (m *Manager) Load(_ context.Context, tag string) ([]*dataset.EvalItem, *dataset.LoadReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, ok := m.datasets[tag]
	if !ok {
		return nil, nil, fmt.Errorf("load dataset %s: %w", tag, os.ErrNotExist)
	}
	return append([]*dataset.EvalItem(nil), items...), &dataset.LoadReport{Loaded: len(items)}, nil
}
