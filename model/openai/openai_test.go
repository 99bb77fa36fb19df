//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AQ-MedAI/RagQALeaderboard/model"
)

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "Who?", buildPrompt("Who?", nil))

	prompt := buildPrompt("Who?", []model.Document{
		{ID: "d1", Title: "France", Text: "Paris is the capital."},
		{ID: "d2", Text: "Unrelated."},
	})
	assert.Contains(t, prompt, "Doc 1 (Title: France): Paris is the capital.")
	assert.Contains(t, prompt, "Doc 2: Unrelated.")
	assert.Contains(t, prompt, "Question: Who?")
}

func TestPredict(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Paris"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	predictor := New("test-model", WithAPIKey("test-key"), WithBaseURL(server.URL))
	prediction, err := predictor.Predict(context.Background(), "Capital of France?", []model.Document{
		{ID: "d1", Text: "Paris is the capital of France."},
	})
	require.NoError(t, err)
	assert.Equal(t, "Paris", prediction.AnswerText)
	assert.Equal(t, []string{"d1"}, prediction.RetrievedDocIDs)
	assert.Equal(t, "test-model", gotBody["model"])
}

func TestPredictEmptyQuestion(t *testing.T) {
	predictor := New("test-model", WithAPIKey("test-key"))
	_, err := predictor.Predict(context.Background(), "", nil)
	require.Error(t, err)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	predictor := New("test-model", WithAPIKey("test-key"), WithBaseURL(server.URL))
	_, err := predictor.Predict(context.Background(), "Capital of France?", nil)
	require.Error(t, err)
}
