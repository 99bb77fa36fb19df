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
	"context"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset/registry"
	"github.com/AQ-MedAI/RagQALeaderboard/model"
)

// DocResolver maps document IDs to their content for the model's retrieval
// context. The default resolver carries IDs only.
type DocResolver func(ctx context.Context, ids []string) ([]model.Document, error)

func defaultDocResolver(_ context.Context, ids []string) ([]model.Document, error) {
	docs := make([]model.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, model.Document{ID: id})
	}
	return docs, nil
}

// Options configure a Runner.
type Options struct {
	Registry registry.Registry
	Resolver DocResolver
}

func newOptions(opt ...Option) *Options {
	opts := &Options{
		Registry: registry.Default(),
		Resolver: defaultDocResolver,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option is a functional option for configuring the Runner.
type Option func(*Options)

// WithRegistry replaces the default dataset registry.
func WithRegistry(r registry.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithDocResolver installs a document content resolver, typically backed by
// the corpus the retriever indexed.
func WithDocResolver(resolver DocResolver) Option {
	return func(o *Options) {
		o.Resolver = resolver
	}
}
