//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFromRecord(t *testing.T) {
	record := Record{
		"id":                "q1",
		"question":          "What is the capital of France?",
		"golden_answers":    []any{"Paris"},
		"golden_doc_ids":    []any{"d1", "d1", "d2"},
		"candidate_doc_ids": []any{"d1", "x1"},
	}
	item, err := ItemFromRecord(record, "triviaqa", HopSingle)
	require.NoError(t, err)
	assert.Equal(t, "q1", item.ID)
	assert.Equal(t, "What is the capital of France?", item.Question)
	assert.Equal(t, []string{"Paris"}, item.GoldenAnswers)
	assert.Equal(t, []string{"d1", "d2"}, item.GoldenDocIDs, "duplicate doc ids collapse")
	assert.Equal(t, []string{"d1", "x1"}, item.CandidateDocIDs)
	assert.Equal(t, "triviaqa", item.DatasetTag)
	assert.Equal(t, HopSingle, item.HopType)
}

func TestItemFromRecordSingleAnswerFallback(t *testing.T) {
	record := Record{
		"id":       "q2",
		"question": "Yes or no?",
		"answer":   "yes",
	}
	item, err := ItemFromRecord(record, "pubmedqa", HopDomain)
	require.NoError(t, err)
	assert.Equal(t, []string{"yes"}, item.GoldenAnswers)
}

func TestItemFromRecordNumericID(t *testing.T) {
	record := Record{
		"id":             float64(42),
		"question":       "numeric id",
		"golden_answers": []any{"fine"},
	}
	item, err := ItemFromRecord(record, "popqa", HopSingle)
	require.NoError(t, err)
	assert.Equal(t, "42", item.ID)
}

func TestItemFromRecordMalformed(t *testing.T) {
	tests := []struct {
		name   string
		record Record
	}{
		{name: "nil record", record: nil},
		{name: "missing id", record: Record{"question": "q", "golden_answers": []any{"a"}}},
		{name: "missing question", record: Record{"id": "q1", "golden_answers": []any{"a"}}},
		{name: "no answers", record: Record{"id": "q1", "question": "q"}},
		{name: "empty answer list", record: Record{"id": "q1", "question": "q", "golden_answers": []any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ItemFromRecord(tt.record, "triviaqa", HopSingle)
			assert.Error(t, err)
		})
	}
}

func TestRecordAccessors(t *testing.T) {
	record := Record{
		"name":  "triviaqa",
		"count": float64(3),
		"tags":  []any{"a", "b"},
		"mixed": []any{"a", 1.0},
	}
	s, ok := record.String("name")
	assert.True(t, ok)
	assert.Equal(t, "triviaqa", s)

	_, ok = record.String("missing")
	assert.False(t, ok)

	list, ok := record.Strings("tags")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, list)

	_, ok = record.Strings("mixed")
	assert.False(t, ok)
}

func TestLocator(t *testing.T) {
	l := &locator{}
	assert.Equal(t, "data/triviaqa.jsonl", l.Build("data", "triviaqa"))

	dir := t.TempDir()
	for _, name := range []string{"triviaqa.jsonl", "hotpotqa.jsonl", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	tags, err := l.List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"triviaqa", "hotpotqa"}, tags)

	tags, err = l.List(filepath.Join(dir, "nonexistent"))
	require.NoError(t, err)
	assert.Empty(t, tags)
}
