//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package model defines the model-facing collaborator contract used to
// obtain predictions during an evaluation run.
package model

import "context"

// Document is one retrieval-context passage handed to the model.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// Prediction is the model's output for one evaluation item. It lives only
// for the duration of scoring; derived scores persist, the text does not.
type Prediction struct {
	ItemID          string   `json:"item_id"`
	AnswerText      string   `json:"answer_text"`
	RetrievedDocIDs []string `json:"retrieved_doc_ids,omitempty"`
}

// Predictor produces one Prediction per question. Implementations may be
// backed by a remote API or local inference; callers must tolerate latency
// and treat returned errors as recoverable per-item failures.
type Predictor interface {
	Predict(ctx context.Context, question string, retrievalContext []Document) (*Prediction, error)
}

// PredictorFunc adapts a function to the Predictor interface.
type PredictorFunc func(ctx context.Context, question string, retrievalContext []Document) (*Prediction, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, question string, retrievalContext []Document) (*Prediction, error) {
	return f(ctx, question, retrievalContext)
}
