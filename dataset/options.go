//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package dataset

// defaultBaseDir is the default base directory for dataset files.
const defaultBaseDir = "datasets"

// Options configure the local dataset manager.
type Options struct {
	BaseDir string  // BaseDir is the base directory for dataset files.
	Locator Locator // Locator is the locator for dataset files.
}

// NewOptions constructs Options with the default values.
func NewOptions(opts ...Option) *Options {
	options := &Options{
		BaseDir: defaultBaseDir,
		Locator: &locator{},
	}
	for _, o := range opts {
		o(options)
	}
	return options
}

// Option is a functional option for configuring the dataset manager.
type Option func(*Options)

// WithBaseDir sets the root directory containing dataset JSONL files.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}

// WithLocator sets the locator.
func WithLocator(l Locator) Option {
	return func(o *Options) {
		o.Locator = l
	}
}
