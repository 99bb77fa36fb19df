//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory report manager implementation.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AQ-MedAI/RagQALeaderboard/epochtime"
	"github.com/AQ-MedAI/RagQALeaderboard/report"
)

// manager implements report.Manager backed by a map.
type manager struct {
	mu      sync.RWMutex
	reports map[string]*report.LeaderboardReport
}

// New creates an in-memory report manager.
func New() report.Manager {
	return &manager{reports: make(map[string]*report.LeaderboardReport)}
}

// Save stores a report, generating an ID and timestamp when absent.
func (m *manager) Save(_ context.Context, r *report.LeaderboardReport) (string, error) {
	if r == nil {
		return "", errors.New("report is nil")
	}
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	if r.CreationTimestamp == nil {
		r.CreationTimestamp = &epochtime.EpochTime{Time: time.Now()}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[r.ReportID] = r
	return r.ReportID, nil
}

// Get retrieves a report by ID.
// Returns os.ErrNotExist if the report is not found.
func (m *manager) Get(_ context.Context, reportID string) (*report.LeaderboardReport, error) {
	if reportID == "" {
		return nil, errors.New("report id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.reports[reportID]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("report %s not found: %w", reportID, os.ErrNotExist)
}

// List returns all stored report IDs sorted lexicographically.
func (m *manager) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.reports))
	for id := range m.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
