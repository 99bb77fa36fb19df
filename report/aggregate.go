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
	"fmt"
	"sort"

	"github.com/AQ-MedAI/RagQALeaderboard/status"
)

// Aggregate computes AggregateMetrics and the item counters from ItemScores.
// Generator metrics average over scored and failed items alike, so failed
// generations stay visible in the mean. Retriever metrics average only over
// items that carry them; items without document supervision do not count as
// zero. A metric with no contributing items aggregates to an undefined
// score with a recorded warning.
func (r *DatasetReport) Aggregate() {
	r.ScoredItems, r.FailedItems, r.SkippedItems = 0, 0, 0
	r.FailedItemIDs = nil
	sums := map[string]float64{}
	counts := map[string]int{}
	names := map[string]struct{}{}
	for _, item := range r.ItemScores {
		switch item.Status {
		case status.ItemStatusScored:
			r.ScoredItems++
		case status.ItemStatusFailed:
			r.FailedItems++
			r.FailedItemIDs = append(r.FailedItemIDs, item.ItemID)
		case status.ItemStatusSkipped:
			r.SkippedItems++
			continue
		}
		for name, score := range item.GeneratorMetrics {
			names[name] = struct{}{}
			sums[name] += score
			counts[name]++
		}
		for name, score := range item.RetrieverMetrics {
			names[name] = struct{}{}
			sums[name] += score
			counts[name]++
		}
	}
	r.AggregateMetrics = make(map[string]Score, len(names))
	for _, name := range sortedNames(names) {
		if counts[name] == 0 {
			r.AggregateMetrics[name] = Undefined()
			continue
		}
		r.AggregateMetrics[name] = Score(sums[name] / float64(counts[name]))
	}
	if r.ScoredItems == 0 {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("dataset %s has no successfully scored items, aggregates are undefined", r.DatasetTag))
		for name := range r.AggregateMetrics {
			r.AggregateMetrics[name] = Undefined()
		}
	}
}

// Overall combines dataset aggregates into leaderboard-level metrics with
// equal dataset weighting. A dataset whose aggregate for a metric is
// undefined is left out of that metric's mean; if no dataset defines the
// metric the overall value is undefined too.
func Overall(reports map[string]*DatasetReport) map[string]Score {
	sums := map[string]float64{}
	counts := map[string]int{}
	names := map[string]struct{}{}
	for _, r := range reports {
		for name, score := range r.AggregateMetrics {
			names[name] = struct{}{}
			if !score.Defined() {
				continue
			}
			sums[name] += float64(score)
			counts[name]++
		}
	}
	overall := make(map[string]Score, len(names))
	for _, name := range sortedNames(names) {
		if counts[name] == 0 {
			overall[name] = Undefined()
			continue
		}
		overall[name] = Score(sums[name] / float64(counts[name]))
	}
	return overall
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
