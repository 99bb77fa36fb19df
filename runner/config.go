//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package runner

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/AQ-MedAI/RagQALeaderboard/metric"
)

const (
	defaultConcurrency = 4
	defaultRetrieverK  = 5
)

// Config is the configuration surface of an evaluation run. Validation
// errors are fatal: the run aborts before touching any dataset.
type Config struct {
	// ModelName names the evaluated model in the final report.
	ModelName string `yaml:"model_name" json:"model_name"`
	// Metrics selects the generator metrics to compute. Empty means all
	// registered metrics.
	Metrics []string `yaml:"metrics" json:"metrics"`
	// RetrieverK lists the cutoff depths for retriever scoring.
	RetrieverK []int `yaml:"retriever_k" json:"retriever_k"`
	// Concurrency bounds simultaneous in-flight prediction calls.
	Concurrency int `yaml:"concurrency" json:"concurrency"`
	// TimeoutSeconds is the per-run cancellation deadline; zero disables it.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`
	// NoiseDocs is the number of noise distractors mixed into the retrieval
	// context when a dataset supplies no ranked candidates.
	NoiseDocs int `yaml:"noise_docs" json:"noise_docs"`
	// Seed makes noise sampling reproducible across runs.
	Seed int64 `yaml:"seed" json:"seed"`
}

// withDefaults fills unset fields with their defaults.
func (c Config) withDefaults() Config {
	if c.ModelName == "" {
		c.ModelName = "unknown"
	}
	if len(c.Metrics) == 0 {
		c.Metrics = metric.Names()
	}
	if len(c.RetrieverK) == 0 {
		c.RetrieverK = []int{defaultRetrieverK}
	}
	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}
	return c
}

// Validate accumulates every configuration error rather than stopping at
// the first, so one failed run surfaces all of them.
func (c Config) Validate() error {
	var result error
	if err := metric.ValidateNames(c.Metrics); err != nil {
		result = multierror.Append(result, err)
	}
	for _, k := range c.RetrieverK {
		if k <= 0 {
			result = multierror.Append(result, fmt.Errorf("retriever cutoff must be positive, got %d", k))
		}
	}
	if c.Concurrency < 0 {
		result = multierror.Append(result, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	if c.TimeoutSeconds < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds))
	}
	if c.NoiseDocs < 0 {
		result = multierror.Append(result, fmt.Errorf("noise_docs must not be negative, got %d", c.NoiseDocs))
	}
	return result
}

// timeout returns the run deadline as a duration, zero when disabled.
func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
