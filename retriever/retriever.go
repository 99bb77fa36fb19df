//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package retriever scores ranked candidate documents against golden documents.
package retriever

import "fmt"

// RecallAtK returns the fraction of golden documents found among the first k
// candidates. The second return value is false when goldenDocIDs is empty, in
// which case the metric is undefined for the item and must be excluded from
// dataset averaging rather than counted as zero.
func RecallAtK(candidateDocIDs []string, goldenDocIDs map[string]struct{}, k int) (float64, bool) {
	if len(goldenDocIDs) == 0 {
		return 0, false
	}
	hits := 0
	for _, id := range truncate(candidateDocIDs, k) {
		if _, ok := goldenDocIDs[id]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(goldenDocIDs)), true
}

// PrecisionAtK returns the fraction of the first k candidates that are golden.
// The second return value is false when goldenDocIDs is empty, matching the
// undefined semantics of RecallAtK.
func PrecisionAtK(candidateDocIDs []string, goldenDocIDs map[string]struct{}, k int) (float64, bool) {
	if len(goldenDocIDs) == 0 {
		return 0, false
	}
	top := truncate(candidateDocIDs, k)
	if len(top) == 0 {
		return 0, true
	}
	hits := 0
	for _, id := range top {
		if _, ok := goldenDocIDs[id]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(top)), true
}

// Scorer computes recall and precision at a configured list of cutoffs.
type Scorer struct {
	cutoffs []int
}

// NewScorer builds a Scorer for the given cutoff depths.
// Cutoffs must be positive.
func NewScorer(cutoffs []int) (*Scorer, error) {
	for _, k := range cutoffs {
		if k <= 0 {
			return nil, fmt.Errorf("retriever cutoff must be positive, got %d", k)
		}
	}
	return &Scorer{cutoffs: append([]int(nil), cutoffs...)}, nil
}

// MetricName returns the metric key used in score maps, e.g. "recall@5".
func MetricName(kind string, k int) string {
	return fmt.Sprintf("%s@%d", kind, k)
}

// Score evaluates the candidate ranking at every configured cutoff.
// The returned map is nil, with ok false, when goldenDocIDs is empty.
func (s *Scorer) Score(candidateDocIDs []string, goldenDocIDs map[string]struct{}) (map[string]float64, bool) {
	if len(goldenDocIDs) == 0 {
		return nil, false
	}
	scores := make(map[string]float64, 2*len(s.cutoffs))
	for _, k := range s.cutoffs {
		recall, _ := RecallAtK(candidateDocIDs, goldenDocIDs, k)
		precision, _ := PrecisionAtK(candidateDocIDs, goldenDocIDs, k)
		scores[MetricName("recall", k)] = recall
		scores[MetricName("precision", k)] = precision
	}
	return scores, true
}

// GoldenSet converts a slice of golden document IDs into the set form the
// scorer consumes, dropping duplicates.
func GoldenSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func truncate(ids []string, k int) []string {
	if k < len(ids) {
		return ids[:k]
	}
	return ids
}
