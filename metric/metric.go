//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package metric provides pure matching metrics over normalized answers.
package metric

import (
	"strings"

	"github.com/AQ-MedAI/RagQALeaderboard/normalize"
)

// ExactMatch returns 1.0 iff the normalized prediction equals the normalized
// form of at least one reference (multi-reference OR semantics), else 0.0.
func ExactMatch(prediction string, references []string) float64 {
	pred := normalize.Normalize(prediction)
	for _, reference := range references {
		if pred == normalize.Normalize(reference) {
			return 1.0
		}
	}
	return 0.0
}

// F1 returns the maximum token-level F1 between the prediction and any
// reference. Tokens are whitespace tokens of the normalized strings and
// overlap is counted as a bag of words, so token order does not matter.
// A prediction and reference that both normalize to empty score 1.0;
// if only one side is empty the pair scores 0.0.
func F1(prediction string, references []string) float64 {
	predTokens := normalize.Tokens(prediction)
	best := 0.0
	for _, reference := range references {
		if score := pairF1(predTokens, normalize.Tokens(reference)); score > best {
			best = score
		}
	}
	return best
}

// Accuracy returns 1.0 iff the normalized prediction contains any normalized
// reference as a contiguous token sequence. This is looser than ExactMatch and
// suits free-form generation where exact phrasing varies.
func Accuracy(prediction string, references []string) float64 {
	pred := normalize.Normalize(prediction)
	for _, reference := range references {
		if containsTokenSequence(pred, normalize.Normalize(reference)) {
			return 1.0
		}
	}
	return 0.0
}

// pairF1 computes token-level F1 for a single prediction/reference pair.
func pairF1(predTokens, refTokens []string) float64 {
	if len(predTokens) == 0 && len(refTokens) == 0 {
		return 1.0
	}
	if len(predTokens) == 0 || len(refTokens) == 0 {
		return 0.0
	}
	remaining := make(map[string]int, len(refTokens))
	for _, token := range refTokens {
		remaining[token]++
	}
	overlap := 0
	for _, token := range predTokens {
		if remaining[token] > 0 {
			remaining[token]--
			overlap++
		}
	}
	if overlap == 0 {
		return 0.0
	}
	precision := float64(overlap) / float64(len(predTokens))
	recall := float64(overlap) / float64(len(refTokens))
	return 2 * precision * recall / (precision + recall)
}

// containsTokenSequence reports whether ref appears in pred on token boundaries.
// Both arguments must already be normalized.
func containsTokenSequence(pred, ref string) bool {
	if ref == "" {
		return pred == ""
	}
	if pred == "" {
		return false
	}
	return strings.Contains(" "+pred+" ", " "+ref+" ")
}
