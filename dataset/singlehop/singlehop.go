//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package singlehop adapts single-hop QA datasets such as TriviaQA and PopQA.
package singlehop

import "github.com/AQ-MedAI/RagQALeaderboard/dataset"

type adapter struct {
	tag string
}

// New creates an adapter for a single-hop dataset identified by tag.
func New(tag string) dataset.Adapter {
	return &adapter{tag: tag}
}

// Tag returns the dataset tag this adapter serves.
func (a *adapter) Tag() string {
	return a.tag
}

// HopType returns the single-hop classification.
func (a *adapter) HopType() dataset.HopType {
	return dataset.HopSingle
}

// Adapt converts one raw record into an EvalItem.
func (a *adapter) Adapt(record dataset.Record) (*dataset.EvalItem, error) {
	return dataset.ItemFromRecord(record, a.tag, dataset.HopSingle)
}
