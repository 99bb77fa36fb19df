//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package docpool builds retrieval-context document lists by mixing golden
// documents with sampled noise distractors. Sampling is seeded so a run is
// reproducible end to end.
package docpool

import "math/rand"

// Sample draws up to n noise IDs without replacement, deterministically for
// a given seed. The input slice is not modified.
func Sample(noiseIDs []string, n int, seed int64) []string {
	if n <= 0 || len(noiseIDs) == 0 {
		return nil
	}
	shuffled := append([]string(nil), noiseIDs...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// Mix samples noiseCount distractors from noiseIDs and shuffles them
// together with the golden IDs, so the model cannot rely on golden documents
// appearing first in its context.
func Mix(goldenIDs, noiseIDs []string, noiseCount int, seed int64) []string {
	mixed := append([]string(nil), goldenIDs...)
	mixed = append(mixed, Sample(noiseIDs, noiseCount, seed)...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(mixed), func(i, j int) {
		mixed[i], mixed[j] = mixed[j], mixed[i]
	})
	return mixed
}
