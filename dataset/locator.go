//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// defaultFileSuffix is the default suffix for dataset files.
const defaultFileSuffix = ".jsonl"

// Locator provides Build and List methods for locating dataset files.
type Locator interface {
	// Build builds the path of the dataset file for the given tag.
	Build(baseDir, tag string) string
	// List lists all dataset tags present under baseDir.
	List(baseDir string) ([]string, error)
}

// locator is the default Locator implementation.
type locator struct {
}

// Build builds the path of a dataset file.
func (l *locator) Build(baseDir, tag string) string {
	return filepath.Join(baseDir, tag+defaultFileSuffix)
}

// List lists all dataset tags under baseDir.
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
