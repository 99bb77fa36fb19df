//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package normalize canonicalizes answer strings for fair comparison.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// articles are English articles removed as standalone tokens.
var articles = map[string]struct{}{
	"a":   {},
	"an":  {},
	"the": {},
}

var (
	// emphasisRE matches single-asterisk markdown emphasis spans.
	emphasisRE = regexp.MustCompile(`\*(.*?)\*`)
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// Normalize canonicalizes text for comparison: lower-case, strip punctuation,
// collapse whitespace, and drop standalone English articles.
// It is deterministic, pure, and idempotent; the empty string normalizes to itself.
func Normalize(text string) string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, field := range fields {
		if _, ok := articles[field]; ok {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

// Tokens returns the whitespace tokens of the normalized text.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// StripReasoning removes a leading reasoning trace from a model prediction.
// Text after the first </think> marker becomes the effective prediction.
// It returns ok=false when the prediction opens a <think> block that never
// closes, meaning the model emitted no usable answer.
func StripReasoning(prediction string) (string, bool) {
	if idx := strings.Index(prediction, thinkClose); idx >= 0 {
		return prediction[idx+len(thinkClose):], true
	}
	if strings.Contains(prediction, thinkOpen) {
		return "", false
	}
	return prediction, true
}

// StripEmphasis removes markdown bold and italic markers from a prediction.
func StripEmphasis(prediction string) string {
	prediction = strings.ReplaceAll(prediction, "**", "")
	return emphasisRE.ReplaceAllString(prediction, "$1")
}
