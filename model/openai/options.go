//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package openai

// Options configure the OpenAI-backed predictor.
type Options struct {
	APIKey       string
	BaseURL      string
	SystemPrompt string
}

func newOptions(opt ...Option) *Options {
	opts := &Options{SystemPrompt: defaultSystemPrompt}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option is a functional option for configuring the predictor.
type Option func(*Options)

// WithAPIKey sets the API key explicitly instead of reading the environment.
func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// WithSystemPrompt overrides the default answering instruction.
func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}
