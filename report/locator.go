//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// defaultFileSuffix is the default suffix for report files.
const defaultFileSuffix = ".report.json"

// Locator provides Build and List methods for locating report files.
type Locator interface {
	// Build builds the path of the report file for the given report ID.
	Build(baseDir, reportID string) string
	// List lists all report IDs present under baseDir.
	List(baseDir string) ([]string, error)
}

// locator is the default Locator implementation.
type locator struct {
}

// Build builds the path of a report file.
func (l *locator) Build(baseDir, reportID string) string {
	return filepath.Join(baseDir, reportID+defaultFileSuffix)
}

// List lists all report IDs under baseDir.
func (l *locator) List(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	var results []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), defaultFileSuffix) {
			results = append(results, strings.TrimSuffix(entry.Name(), defaultFileSuffix))
		}
	}
	return results, nil
}
