//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package generator scores generated answers against golden answers.
package generator

import (
	"fmt"

	"github.com/AQ-MedAI/RagQALeaderboard/metric"
	"github.com/AQ-MedAI/RagQALeaderboard/normalize"
)

// Options configures a Scorer.
type Options struct {
	// EMPreprocess, when set, rewrites the cleaned prediction before
	// ExactMatch only. Datasets with short categorical answers use this
	// to trim trailing elaboration, e.g. keeping text before the first
	// comma for yes/no/maybe answers.
	EMPreprocess func(prediction string) string
}

// Option mutates Options.
type Option func(*Options)

// WithEMPreprocess installs a prediction rewrite applied before ExactMatch.
func WithEMPreprocess(fn func(string) string) Option {
	return func(o *Options) {
		o.EMPreprocess = fn
	}
}

// Scorer evaluates answer text with a configured subset of metrics.
// Predictions are cleaned once before scoring: a reasoning trace terminated
// by </think> is stripped, and markdown emphasis markers are removed, so the
// metrics see the answer the model actually committed to.
type Scorer struct {
	metrics []string
	opts    Options
}

// NewScorer builds a Scorer computing the named metrics.
// An empty metrics list defaults to every registered metric.
func NewScorer(metrics []string, opt ...Option) (*Scorer, error) {
	if len(metrics) == 0 {
		metrics = metric.Names()
	}
	if err := metric.ValidateNames(metrics); err != nil {
		return nil, fmt.Errorf("generator scorer: %w", err)
	}
	opts := Options{}
	for _, o := range opt {
		o(&opts)
	}
	return &Scorer{metrics: append([]string(nil), metrics...), opts: opts}, nil
}

// Metrics returns the metric names this scorer computes.
func (s *Scorer) Metrics() []string {
	return append([]string(nil), s.metrics...)
}

// Score computes the configured metrics for one prediction. Missing or
// malformed predictions are scored as-is, never excluded, so failed
// generations stay visible in aggregates.
func (s *Scorer) Score(answer string, references []string) map[string]float64 {
	cleaned := Clean(answer)
	scores := make(map[string]float64, len(s.metrics))
	for _, name := range s.metrics {
		fn, _ := metric.Lookup(name)
		input := cleaned
		if name == metric.NameExactMatch && s.opts.EMPreprocess != nil {
			input = s.opts.EMPreprocess(cleaned)
		}
		scores[name] = fn(input, references)
	}
	return scores
}

// ZeroScores returns an all-zero score map for the configured metrics,
// used for items whose prediction call failed outright.
func (s *Scorer) ZeroScores() map[string]float64 {
	scores := make(map[string]float64, len(s.metrics))
	for _, name := range s.metrics {
		scores[name] = 0.0
	}
	return scores
}

// Clean strips the reasoning trace and markdown emphasis from a raw
// prediction. An unterminated reasoning block yields the empty string.
func Clean(answer string) string {
	answer, ok := normalize.StripReasoning(answer)
	if !ok {
		return ""
	}
	return normalize.StripEmphasis(answer)
}
