//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Func scores a prediction against a set of references in [0, 1].
type Func func(prediction string, references []string) float64

// Metric names accepted in run configuration.
const (
	NameExactMatch = "em"
	NameF1         = "f1"
	NameAccuracy   = "accuracy"
)

var byName = map[string]Func{
	NameExactMatch: ExactMatch,
	NameF1:         F1,
	NameAccuracy:   Accuracy,
}

// Lookup returns the metric function registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := byName[name]
	return fn, ok
}

// Names returns the registered metric names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateNames checks that every name is a registered metric, accumulating
// one error per unknown name.
func ValidateNames(names []string) error {
	var result error
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			result = multierror.Append(result, fmt.Errorf("unknown metric %q, registered metrics: %v", name, Names()))
		}
	}
	return result
}
