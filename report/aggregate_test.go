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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AQ-MedAI/RagQALeaderboard/status"
)

func TestAggregate(t *testing.T) {
	r := &DatasetReport{
		DatasetTag: "triviaqa",
		ItemScores: []*ItemScore{
			{
				ItemID:           "q1",
				Status:           status.ItemStatusScored,
				GeneratorMetrics: map[string]float64{"em": 1.0, "f1": 1.0},
				RetrieverMetrics: map[string]float64{"recall@5": 1.0},
			},
			{
				ItemID:           "q2",
				Status:           status.ItemStatusScored,
				GeneratorMetrics: map[string]float64{"em": 0.0, "f1": 0.5},
				// No document supervision, excluded from retriever mean.
			},
			{
				ItemID:           "q3",
				Status:           status.ItemStatusFailed,
				GeneratorMetrics: map[string]float64{"em": 0.0, "f1": 0.0},
				Error:            "collaborator timeout",
			},
		},
	}
	r.Aggregate()

	assert.Equal(t, 2, r.ScoredItems)
	assert.Equal(t, 1, r.FailedItems)
	assert.Equal(t, []string{"q3"}, r.FailedItemIDs)
	assert.Zero(t, r.SkippedItems)

	assert.InDelta(t, 1.0/3.0, float64(r.AggregateMetrics["em"]), 1e-9, "failed item counts as zero")
	assert.InDelta(t, 0.5, float64(r.AggregateMetrics["f1"]), 1e-9)
	assert.InDelta(t, 1.0, float64(r.AggregateMetrics["recall@5"]), 1e-9,
		"items without golden docs are excluded, not zeroed")
}

func TestAggregateSkippedItemsExcluded(t *testing.T) {
	r := &DatasetReport{
		DatasetTag: "popqa",
		ItemScores: []*ItemScore{
			{ItemID: "q1", Status: status.ItemStatusScored, GeneratorMetrics: map[string]float64{"em": 1.0}},
			{ItemID: "q2", Status: status.ItemStatusSkipped},
		},
	}
	r.Aggregate()
	assert.Equal(t, 1, r.SkippedItems)
	assert.InDelta(t, 1.0, float64(r.AggregateMetrics["em"]), 1e-9)
}

func TestAggregateNoScoredItems(t *testing.T) {
	r := &DatasetReport{
		DatasetTag: "popqa",
		ItemScores: []*ItemScore{
			{ItemID: "q1", Status: status.ItemStatusFailed, GeneratorMetrics: map[string]float64{"em": 0.0}},
		},
	}
	r.Aggregate()
	assert.Equal(t, 1, r.FailedItems)
	assert.False(t, r.AggregateMetrics["em"].Defined())
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "no successfully scored items")
}

func TestOverallEqualDatasetWeighting(t *testing.T) {
	small := &DatasetReport{DatasetTag: "small", AggregateMetrics: map[string]Score{"em": 1.0}}
	large := &DatasetReport{DatasetTag: "large", AggregateMetrics: map[string]Score{"em": 0.0}}

	overall := Overall(map[string]*DatasetReport{"small": small, "large": large})
	assert.InDelta(t, 0.5, float64(overall["em"]), 1e-9,
		"each dataset counts once regardless of item count")
}

func TestOverallUndefinedDatasetExcluded(t *testing.T) {
	defined := &DatasetReport{DatasetTag: "a", AggregateMetrics: map[string]Score{"em": 0.4}}
	undefined := &DatasetReport{DatasetTag: "b", AggregateMetrics: map[string]Score{"em": Undefined()}}

	overall := Overall(map[string]*DatasetReport{"a": defined, "b": undefined})
	assert.InDelta(t, 0.4, float64(overall["em"]), 1e-9)

	overall = Overall(map[string]*DatasetReport{"b": undefined})
	assert.False(t, overall["em"].Defined())
}

func TestScoreJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Score{"em": 0.5, "f1": Undefined()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"em": 0.5, "f1": null}`, string(data))

	var decoded map[string]Score
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Score(0.5), decoded["em"])
	assert.False(t, decoded["f1"].Defined())
}
