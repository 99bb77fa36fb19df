//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file dataset manager reading JSONL files.
package local

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/registry"
	"github.com/AQ-MedAI/RagQALeaderboard/log"
)

// maxLineBytes bounds a single JSONL line; contexts with long passages can
// exceed bufio's default buffer.
const maxLineBytes = 16 * 1024 * 1024

// manager implements dataset.Manager backed by JSONL files on disk, one file
// per dataset tag.
type manager struct {
	baseDir  string
	locator  dataset.Locator
	registry registry.Registry
}

// New creates a local file dataset manager resolving adapters through reg.
func New(reg registry.Registry, opt ...dataset.Option) dataset.Manager {
	opts := dataset.NewOptions(opt...)
	return &manager{
		baseDir:  opts.BaseDir,
		locator:  opts.Locator,
		registry: reg,
	}
}

// Load reads the dataset file for tag and adapts each line into an EvalItem.
// Malformed lines are skipped with a recorded warning, never silently dropped.
func (m *manager) Load(ctx context.Context, tag string) ([]*dataset.EvalItem, *dataset.LoadReport, error) {
	if tag == "" {
		return nil, nil, errors.New("dataset tag is empty")
	}
	entry, err := m.registry.Get(tag)
	if err != nil {
		return nil, nil, err
	}
	path := m.locator.Build(m.baseDir, tag)
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset %s: %w", tag, err)
	}
	defer file.Close()

	items := []*dataset.EvalItem{}
	report := &dataset.LoadReport{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("load dataset %s: %w", tag, err)
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var record dataset.Record
		if err := json.Unmarshal([]byte(text), &record); err != nil {
			m.skip(report, tag, line, fmt.Errorf("decode: %w", err))
			continue
		}
		item, err := entry.Adapter.Adapt(record)
		if err != nil {
			m.skip(report, tag, line, err)
			continue
		}
		items = append(items, item)
		report.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read dataset %s: %w", tag, err)
	}
	return items, report, nil
}

func (m *manager) skip(report *dataset.LoadReport, tag string, line int, err error) {
	warning := fmt.Sprintf("dataset %s line %d skipped: %v", tag, line, err)
	log.Warnf("%s", warning)
	report.Skipped++
	report.Warnings = append(report.Warnings, warning)
}
