//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package report

// defaultBaseDir is the default base directory for report files.
const defaultBaseDir = "results"

// Options configure the local report manager.
type Options struct {
	BaseDir string  // BaseDir is the base directory for report files.
	Locator Locator // Locator is the locator for report files.
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

// Option is a functional option for configuring the report manager.
type Option func(*Options)

// WithBaseDir sets the root directory for storing report JSON files.
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
