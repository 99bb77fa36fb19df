//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/registry"
)

func writeDataset(t *testing.T, dir, tag, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tag+".jsonl"), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "triviaqa", `{"id":"q1","question":"Capital of France?","golden_answers":["Paris"]}
{"id":"q2","question":"Capital of Germany?","golden_answers":["Berlin"],"golden_doc_ids":["d1"]}
`)

	mgr := New(registry.Default(), dataset.WithBaseDir(dir))
	items, report, err := mgr.Load(context.Background(), "triviaqa")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, report.Loaded)
	assert.Zero(t, report.Skipped)
	assert.Equal(t, "q1", items[0].ID)
	assert.Equal(t, dataset.HopSingle, items[0].HopType)
	assert.Equal(t, []string{"d1"}, items[1].GoldenDocIDs)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "triviaqa", `{"id":"q1","question":"ok?","golden_answers":["yes"]}
not json at all
{"id":"q3","question":"missing answers"}

{"id":"q4","question":"ok too?","golden_answers":["no"]}
`)

	mgr := New(registry.Default(), dataset.WithBaseDir(dir))
	items, report, err := mgr.Load(context.Background(), "triviaqa")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 2, report.Skipped)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "line 2")
	assert.Contains(t, report.Warnings[1], "line 3")
}

func TestLoadUnknownTag(t *testing.T) {
	mgr := New(registry.Default(), dataset.WithBaseDir(t.TempDir()))
	_, _, err := mgr.Load(context.Background(), "unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMissingFile(t *testing.T) {
	mgr := New(registry.Default(), dataset.WithBaseDir(t.TempDir()))
	_, _, err := mgr.Load(context.Background(), "triviaqa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEmptyTag(t *testing.T) {
	mgr := New(registry.Default())
	_, _, err := mgr.Load(context.Background(), "")
	require.Error(t, err)
}

func TestLoadCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "triviaqa", `{"id":"q1","question":"ok?","golden_answers":["yes"]}
`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mgr := New(registry.Default(), dataset.WithBaseDir(dir))
	_, _, err := mgr.Load(ctx, "triviaqa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadMultiHopRequiresGoldenDocs(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "hotpotqa", `{"id":"q1","question":"two hops?","golden_answers":["yes"],"golden_doc_ids":["d1","d2"]}
{"id":"q2","question":"no docs","golden_answers":["no"]}
`)

	mgr := New(registry.Default(), dataset.WithBaseDir(dir))
	items, report, err := mgr.Load(context.Background(), "hotpotqa")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"d1", "d2"}, items[0].GoldenDocIDs)
	assert.Equal(t, 1, report.Skipped)
}
