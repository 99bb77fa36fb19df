//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package multihop adapts multi-hop QA datasets such as HotpotQA, MuSiQue
// and 2WikiMultihopQA. Multi-hop questions are supervised by several golden
// documents per item, which the adapter preserves as a set rather than
// reducing to a single document.
package multihop

import (
	"fmt"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
)

type adapter struct {
	tag string
}

// New creates an adapter for a multi-hop dataset identified by tag.
func New(tag string) dataset.Adapter {
	return &adapter{tag: tag}
}

// Tag returns the dataset tag this adapter serves.
func (a *adapter) Tag() string {
	return a.tag
}

// HopType returns the multi-hop classification.
func (a *adapter) HopType() dataset.HopType {
	return dataset.HopMulti
}

// Adapt converts one raw record into an EvalItem. Multi-hop records must
// carry document-level supervision.
func (a *adapter) Adapt(record dataset.Record) (*dataset.EvalItem, error) {
	item, err := dataset.ItemFromRecord(record, a.tag, dataset.HopMulti)
	if err != nil {
		return nil, err
	}
	if len(item.GoldenDocIDs) == 0 {
		return nil, fmt.Errorf("record %s has no golden documents", item.ID)
	}
	return item, nil
}
