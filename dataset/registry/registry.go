//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and retrieval of dataset adapters.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/biomedical"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/multihop"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/singlehop"
)

// Supported dataset tags.
const (
	TagTriviaQA  = "triviaqa"
	TagPopQA     = "popqa"
	TagHotpotQA  = "hotpotqa"
	TagMuSiQueQA = "musiqueqa"
	Tag2Wiki     = "2wiki"
	TagPubMedQA  = "pubmedqa"
)

// Entry describes one registered dataset.
type Entry struct {
	// Adapter maps the dataset's native records to EvalItems.
	Adapter dataset.Adapter
	// EMPreprocess, when non-nil, rewrites cleaned predictions before
	// exact-match scoring for this dataset.
	EMPreprocess func(prediction string) string
}

// Registry defines the interface for dataset adapter registries.
type Registry interface {
	// Register registers a dataset entry under its adapter's tag.
	Register(entry Entry) error
	// Get retrieves the entry for a dataset tag.
	Get(tag string) (Entry, error)
	// List returns all registered dataset tags.
	List() []string
}

// registry is the default implementation of Registry.
type registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty dataset registry.
func New() Registry {
	return &registry{entries: make(map[string]Entry)}
}

// Default creates a registry with every supported dataset registered.
func Default() Registry {
	r := New()
	_ = r.Register(Entry{Adapter: singlehop.New(TagTriviaQA)})
	_ = r.Register(Entry{Adapter: singlehop.New(TagPopQA)})
	_ = r.Register(Entry{Adapter: multihop.New(TagHotpotQA)})
	_ = r.Register(Entry{Adapter: multihop.New(TagMuSiQueQA)})
	_ = r.Register(Entry{Adapter: multihop.New(Tag2Wiki)})
	_ = r.Register(Entry{
		Adapter:      biomedical.New(TagPubMedQA),
		EMPreprocess: biomedical.TrimElaboration,
	})
	return r
}

// Register registers a dataset entry under its adapter's tag.
// Registering the same tag again overwrites the previous entry.
func (r *registry) Register(entry Entry) error {
	if entry.Adapter == nil {
		return errors.New("adapter is nil")
	}
	tag := entry.Adapter.Tag()
	if tag == "" {
		return errors.New("adapter tag is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[tag] = entry
	return nil
}

// Get gets the entry for a dataset tag.
// Returns os.ErrNotExist if the tag is not registered.
func (r *registry) Get(tag string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.entries[tag]; ok {
		return entry, nil
	}
	return Entry{}, fmt.Errorf("get dataset %s: %w", tag, os.ErrNotExist)
}

// List returns all registered dataset tags sorted lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
