//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file report manager implementation.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AQ-MedAI/RagQALeaderboard/epochtime"
	"github.com/AQ-MedAI/RagQALeaderboard/report"
)

const (
	defaultTempFileSuffix = ".tmp"
	defaultDirPermission  = 0o755
	defaultFilePermission = 0o644
)

// manager implements report.Manager backed by the local filesystem.
type manager struct {
	mu      sync.RWMutex
	baseDir string
	locator report.Locator
}

// New creates a local file report manager.
func New(opt ...report.Option) report.Manager {
	opts := report.NewOptions(opt...)
	return &manager{
		baseDir: opts.BaseDir,
		locator: opts.Locator,
	}
}

// Save stores a report, generating an ID and timestamp when absent.
// The file is written to a temporary path and renamed so readers never see
// a partial report.
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
	if err := m.store(r); err != nil {
		return "", fmt.Errorf("store report %s: %w", r.ReportID, err)
	}
	return r.ReportID, nil
}

// Get retrieves a report by ID.
// Returns an error wrapping os.ErrNotExist if the report does not exist.
func (m *manager) Get(_ context.Context, reportID string) (*report.LeaderboardReport, error) {
	if reportID == "" {
		return nil, errors.New("report id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path := m.locator.Build(m.baseDir, reportID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", reportID, err)
	}
	var r report.LeaderboardReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", reportID, err)
	}
	return &r, nil
}

// List returns the IDs of all stored reports.
func (m *manager) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids, err := m.locator.List(m.baseDir)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return ids, nil
}

// store writes the report to the file system atomically.
func (m *manager) store(r *report.LeaderboardReport) error {
	path := m.locator.Build(m.baseDir, r.ReportID)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPermission); err != nil {
		return fmt.Errorf("mkdir all %s: %w", dir, err)
	}
	tmp := path + defaultTempFileSuffix
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultFilePermission)
	if err != nil {
		return fmt.Errorf("open file %s: %w", tmp, err)
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode file %s: %w", tmp, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename file %s to %s: %w", tmp, path, err)
	}
	return nil
}
