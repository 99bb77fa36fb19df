//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package report defines the per-item, per-dataset and leaderboard result
// structures produced by an evaluation run, and the Manager interface for
// persisting them.
package report

import (
	"context"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	"github.com/AQ-MedAI/RagQALeaderboard/epochtime"
	"github.com/AQ-MedAI/RagQALeaderboard/status"
)

// ItemScore holds the scores of one evaluation item. RetrieverMetrics is nil
// when the item carries no document-level supervision; such items are
// excluded from retriever aggregates rather than counted as zero.
type ItemScore struct {
	// ItemID identifies the evaluation item.
	ItemID string `json:"itemId"`
	// Status records whether the item was scored, failed or skipped.
	Status status.ItemStatus `json:"status"`
	// GeneratorMetrics maps metric name to score for the generated answer.
	GeneratorMetrics map[string]float64 `json:"generatorMetrics,omitempty"`
	// RetrieverMetrics maps metric name to score for the retrieved documents.
	RetrieverMetrics map[string]float64 `json:"retrieverMetrics,omitempty"`
	// Error carries the recorded cause for failed items.
	Error string `json:"error,omitempty"`
}

// DatasetReport holds the results of one dataset run. ItemScores preserves
// the original dataset item order regardless of completion order.
type DatasetReport struct {
	// DatasetTag identifies the dataset.
	DatasetTag string `json:"datasetTag"`
	// HopType is the dataset's hop classification.
	HopType dataset.HopType `json:"hopType,omitempty"`
	// ItemScores contains one entry per item, in dataset order.
	ItemScores []*ItemScore `json:"itemScores"`
	// AggregateMetrics maps metric name to the arithmetic mean over
	// contributing items. NaN marks an undefined aggregate.
	AggregateMetrics map[string]Score `json:"aggregateMetrics,omitempty"`
	// ScoredItems counts items scored successfully.
	ScoredItems int `json:"scoredItems"`
	// FailedItems counts items whose prediction call failed.
	FailedItems int `json:"failedItems"`
	// SkippedItems counts items never dispatched before cancellation.
	SkippedItems int `json:"skippedItems"`
	// SkippedRecords counts malformed dataset records dropped at load time.
	SkippedRecords int `json:"skippedRecords,omitempty"`
	// FailedItemIDs lists the IDs of failed items for the report renderer.
	FailedItemIDs []string `json:"failedItemIds,omitempty"`
	// Warnings carries load warnings and aggregation warnings.
	Warnings []string `json:"warnings,omitempty"`
}

// LeaderboardReport is the terminal artifact of a run, immutable once
// emitted.
type LeaderboardReport struct {
	// ReportID uniquely identifies this report.
	ReportID string `json:"reportId,omitempty"`
	// ModelName names the evaluated model.
	ModelName string `json:"modelName"`
	// DatasetReports maps dataset tag to its report.
	DatasetReports map[string]*DatasetReport `json:"datasetReports"`
	// OverallMetrics maps metric name to the mean across datasets, every
	// dataset weighted equally regardless of size.
	OverallMetrics map[string]Score `json:"overallMetrics,omitempty"`
	// CreationTimestamp when this report was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// Manager defines the interface for persisting leaderboard reports.
type Manager interface {
	// Save stores a report and returns its ID, generating one if empty.
	Save(ctx context.Context, report *LeaderboardReport) (string, error)
	// Get retrieves a report by ID.
	Get(ctx context.Context, reportID string) (*LeaderboardReport, error)
	// List returns all stored report IDs.
	List(ctx context.Context) ([]string, error)
}
