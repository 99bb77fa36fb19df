//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package status provides run and item statuses for evaluation.
package status

// RunState represents the lifecycle state of a per-dataset evaluation run.
type RunState int

const (
	// RunStateNotStarted represents a run that has not begun.
	RunStateNotStarted RunState = iota
	// RunStateLoading represents a run that is loading and adapting dataset records.
	RunStateLoading
	// RunStateScoring represents a run that is obtaining predictions and scoring items.
	RunStateScoring
	// RunStateAggregating represents a run that is aggregating item scores.
	RunStateAggregating
	// RunStateDone represents a completed run.
	RunStateDone
	// RunStateFailed represents a run terminated by an unrecoverable error.
	RunStateFailed
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	switch s {
	case RunStateNotStarted:
		return "not_started"
	case RunStateLoading:
		return "loading"
	case RunStateScoring:
		return "scoring"
	case RunStateAggregating:
		return "aggregating"
	case RunStateDone:
		return "done"
	case RunStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is terminal.
func (s RunState) Terminal() bool {
	return s == RunStateDone || s == RunStateFailed
}

// ItemStatus represents the scoring outcome of a single evaluation item.
type ItemStatus int

const (
	// ItemStatusUnknown represents an unknown item status.
	ItemStatusUnknown ItemStatus = iota
	// ItemStatusScored represents an item that was scored successfully.
	ItemStatusScored
	// ItemStatusFailed represents an item whose prediction or scoring failed.
	ItemStatusFailed
	// ItemStatusSkipped represents an item left unscored by run cancellation.
	ItemStatusSkipped
)

// String returns the string representation of the item status.
func (s ItemStatus) String() string {
	switch s {
	case ItemStatusScored:
		return "scored"
	case ItemStatusFailed:
		return "failed"
	case ItemStatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}
