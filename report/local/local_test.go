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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AQ-MedAI/RagQALeaderboard/report"
	"github.com/AQ-MedAI/RagQALeaderboard/status"
)

func sampleReport() *report.LeaderboardReport {
	return &report.LeaderboardReport{
		ModelName: "test-model",
		DatasetReports: map[string]*report.DatasetReport{
			"triviaqa": {
				DatasetTag: "triviaqa",
				ItemScores: []*report.ItemScore{
					{ItemID: "q1", Status: status.ItemStatusScored, GeneratorMetrics: map[string]float64{"em": 1.0}},
				},
				AggregateMetrics: map[string]report.Score{"em": 1.0},
				ScoredItems:      1,
			},
		},
		OverallMetrics: map[string]report.Score{"em": 1.0},
	}
}

func TestSaveAndGet(t *testing.T) {
	mgr := New(report.WithBaseDir(t.TempDir()))

	id, err := mgr.Save(context.Background(), sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := mgr.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "test-model", got.ModelName)
	require.Contains(t, got.DatasetReports, "triviaqa")
	assert.Equal(t, report.Score(1.0), got.DatasetReports["triviaqa"].AggregateMetrics["em"])
	assert.NotNil(t, got.CreationTimestamp)
}

func TestSaveUndefinedAggregate(t *testing.T) {
	mgr := New(report.WithBaseDir(t.TempDir()))

	r := sampleReport()
	r.OverallMetrics["f1"] = report.Undefined()
	id, err := mgr.Save(context.Background(), r)
	require.NoError(t, err)

	got, err := mgr.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.OverallMetrics["f1"].Defined())
	assert.True(t, got.OverallMetrics["em"].Defined())
}

func TestGetMissing(t *testing.T) {
	mgr := New(report.WithBaseDir(t.TempDir()))
	_, err := mgr.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestList(t *testing.T) {
	mgr := New(report.WithBaseDir(t.TempDir()))

	ids, err := mgr.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)

	first, err := mgr.Save(context.Background(), sampleReport())
	require.NoError(t, err)
	second, err := mgr.Save(context.Background(), sampleReport())
	require.NoError(t, err)

	ids, err = mgr.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, ids)
}

func TestSaveNil(t *testing.T) {
	mgr := New(report.WithBaseDir(t.TempDir()))
	_, err := mgr.Save(context.Background(), nil)
	require.Error(t, err)
}
