//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStateString(t *testing.T) {
	tests := []struct {
		state RunState
		want  string
	}{
		{RunStateNotStarted, "not_started"},
		{RunStateLoading, "loading"},
		{RunStateScoring, "scoring"},
		{RunStateAggregating, "aggregating"},
		{RunStateDone, "done"},
		{RunStateFailed, "failed"},
		{RunState(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestRunStateTerminal(t *testing.T) {
	assert.True(t, RunStateDone.Terminal())
	assert.True(t, RunStateFailed.Terminal())
	assert.False(t, RunStateNotStarted.Terminal())
	assert.False(t, RunStateScoring.Terminal())
	assert.False(t, RunStateAggregating.Terminal())
}

func TestItemStatusString(t *testing.T) {
	assert.Equal(t, "scored", ItemStatusScored.String())
	assert.Equal(t, "failed", ItemStatusFailed.String())
	assert.Equal(t, "skipped", ItemStatusSkipped.String())
	assert.Equal(t, "unknown", ItemStatusUnknown.String())
}
