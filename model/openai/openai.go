//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package openai provides a model predictor backed by an OpenAI-compatible
// chat completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"github.com/AQ-MedAI/RagQALeaderboard/model"
)

const defaultSystemPrompt = "Answer the question based on the given documents. " +
	"Only give me the answer and do not output any other words."

// Predictor implements model.Predictor over a chat completion endpoint.
type Predictor struct {
	client       openai.Client
	name         string
	systemPrompt string
}

// New creates a predictor calling the named chat model. The API key falls
// back to the OPENAI_API_KEY environment variable when not set explicitly.
func New(name string, opt ...Option) *Predictor {
	opts := newOptions(opt...)
	var clientOpts []openaiopt.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(opts.BaseURL))
	}
	return &Predictor{
		client:       openai.NewClient(clientOpts...),
		name:         name,
		systemPrompt: opts.SystemPrompt,
	}
}

// Predict sends one chat completion request for the question, prefixing the
// retrieval context as numbered documents, and returns the model's answer.
func (p *Predictor) Predict(ctx context.Context, question string, retrievalContext []model.Document) (*model.Prediction, error) {
	if question == "" {
		return nil, errors.New("question is empty")
	}
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.name,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.systemPrompt),
			openai.UserMessage(buildPrompt(question, retrievalContext)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}
	docIDs := make([]string, 0, len(retrievalContext))
	for _, doc := range retrievalContext {
		docIDs = append(docIDs, doc.ID)
	}
	return &model.Prediction{
		AnswerText:      completion.Choices[0].Message.Content,
		RetrievedDocIDs: docIDs,
	}, nil
}

// buildPrompt renders the retrieval context above the question, one numbered
// passage per document, matching the order the retriever ranked them in.
func buildPrompt(question string, docs []model.Document) string {
	if len(docs) == 0 {
		return question
	}
	var b strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&b, "Doc %d", i+1)
		if doc.Title != "" {
			fmt.Fprintf(&b, " (Title: %s)", doc.Title)
		}
		fmt.Fprintf(&b, ": %s\n", doc.Text)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
