//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package docpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDeterministic(t *testing.T) {
	pool := []string{"n1", "n2", "n3", "n4", "n5"}

	first := Sample(pool, 3, 7)
	second := Sample(pool, 3, 7)
	assert.Equal(t, first, second, "same seed must reproduce the sample")
	assert.Len(t, first, 3)

	// Every sampled ID comes from the pool, without repeats.
	seen := map[string]bool{}
	for _, id := range first {
		assert.Contains(t, pool, id)
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestSampleBounds(t *testing.T) {
	pool := []string{"n1", "n2"}
	assert.Len(t, Sample(pool, 10, 1), 2, "capped at pool size")
	assert.Nil(t, Sample(pool, 0, 1))
	assert.Nil(t, Sample(nil, 3, 1))
	assert.Equal(t, []string{"n1", "n2"}, pool, "input order untouched")
}

func TestMix(t *testing.T) {
	golden := []string{"g1", "g2"}
	noise := []string{"n1", "n2", "n3", "n4"}

	mixed := Mix(golden, noise, 2, 42)
	require.Len(t, mixed, 4)
	assert.Subset(t, mixed, golden, "all golden documents survive the mix")

	again := Mix(golden, noise, 2, 42)
	assert.Equal(t, mixed, again, "same seed reproduces the mix")
}

func TestMixNoNoise(t *testing.T) {
	mixed := Mix([]string{"g1"}, nil, 5, 1)
	assert.Equal(t, []string{"g1"}, mixed)
}
