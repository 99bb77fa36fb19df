//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package dataset defines the uniform evaluation item model and the adapter
// contract that maps native dataset records onto it.
package dataset

import (
	"context"
	"errors"
	"fmt"
)

// HopType classifies a question by how many reasoning steps it needs.
type HopType string

// Recognized hop types.
const (
	HopSingle HopType = "single-hop"
	HopMulti  HopType = "multi-hop"
	HopDomain HopType = "domain-specific"
)

// EvalItem is one question with its golden supervision, immutable once
// constructed by an Adapter. GoldenAnswers is never empty; GoldenDocIDs may
// be empty only for datasets without document-level supervision.
type EvalItem struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	GoldenAnswers   []string `json:"golden_answers"`
	GoldenDocIDs    []string `json:"golden_doc_ids,omitempty"`
	CandidateDocIDs []string `json:"candidate_doc_ids,omitempty"`
	NoiseDocIDs     []string `json:"noise_doc_ids,omitempty"`
	DatasetTag      string   `json:"dataset_tag"`
	HopType         HopType  `json:"hop_type"`
}

// Record is one raw dataset record decoded from JSON with its native field
// names preserved.
type Record map[string]any

// Adapter maps one dataset's native records into EvalItems.
type Adapter interface {
	// Tag returns the dataset tag this adapter serves.
	Tag() string
	// HopType returns the hop classification of the dataset's questions.
	HopType() HopType
	// Adapt converts one raw record. Malformed records return an error and
	// are skipped by the caller with a recorded warning.
	Adapt(record Record) (*EvalItem, error)
}

// LoadReport counts the outcome of loading one dataset. Skipped records are
// surfaced here rather than silently dropped.
type LoadReport struct {
	Loaded   int      `json:"loaded"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// Manager supplies EvalItems per dataset tag.
type Manager interface {
	// Load returns the items of the dataset identified by tag, in source
	// order, along with a LoadReport describing skipped records.
	Load(ctx context.Context, tag string) ([]*EvalItem, *LoadReport, error)
}

// String extracts a string field from the record. Numeric identifiers are
// accepted and rendered in their JSON form.
func (r Record) String(key string) (string, bool) {
	value, ok := r[key]
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

// Strings extracts a list-of-strings field from the record.
func (r Record) Strings(key string) ([]string, bool) {
	value, ok := r[key]
	if !ok {
		return nil, false
	}
	list, ok := value.([]any)
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(list))
	for _, element := range list {
		s, ok := element.(string)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}

// ItemFromRecord performs the field mapping shared by all dataset families.
// Golden answers come from "golden_answers", falling back to a single
// "answer" field; an item with no golden answer is malformed.
func ItemFromRecord(record Record, tag string, hop HopType) (*EvalItem, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	id, ok := record.String("id")
	if !ok || id == "" {
		return nil, errors.New("record has no id")
	}
	question, ok := record.String("question")
	if !ok || question == "" {
		return nil, fmt.Errorf("record %s has no question", id)
	}
	answers, ok := record.Strings("golden_answers")
	if !ok {
		if answer, found := record.String("answer"); found && answer != "" {
			answers = []string{answer}
		}
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("record %s has no golden answers", id)
	}
	goldenDocs, _ := record.Strings("golden_doc_ids")
	candidateDocs, _ := record.Strings("candidate_doc_ids")
	noiseDocs, _ := record.Strings("noise_doc_ids")
	return &EvalItem{
		ID:              id,
		Question:        question,
		GoldenAnswers:   answers,
		GoldenDocIDs:    dedupe(goldenDocs),
		CandidateDocIDs: candidateDocs,
		NoiseDocIDs:     noiseDocs,
		DatasetTag:      tag,
		HopType:         hop,
	}, nil
}

// dedupe drops duplicate IDs while preserving first-seen order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	kept := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	return kept
}
