//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package biomedical adapts domain-specific biomedical QA datasets such as
// PubMedQA, whose golden answers are short categorical labels (yes/no/maybe)
// that models tend to pad with elaboration.
package biomedical

import (
	"strings"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
)

type adapter struct {
	tag string
}

// New creates an adapter for a biomedical dataset identified by tag.
func New(tag string) dataset.Adapter {
	return &adapter{tag: tag}
}

// Tag returns the dataset tag this adapter serves.
func (a *adapter) Tag() string {
	return a.tag
}

// HopType returns the domain-specific classification.
func (a *adapter) HopType() dataset.HopType {
	return dataset.HopDomain
}

// Adapt converts one raw record into an EvalItem.
func (a *adapter) Adapt(record dataset.Record) (*dataset.EvalItem, error) {
	return dataset.ItemFromRecord(record, a.tag, dataset.HopDomain)
}

// TrimElaboration keeps the prediction text before the first comma. Models
// answering categorical questions often emit "yes, because ..."; exact match
// against the short label should only see the label.
func TrimElaboration(prediction string) string {
	return strings.Split(prediction, ",")[0]
}
