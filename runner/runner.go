//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package runner orchestrates evaluation runs: it loads datasets, obtains
// predictions through the model-facing collaborator, drives the retriever
// and generator scorers, and assembles the leaderboard report.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/registry"
	"github.com/AQ-MedAI/RagQALeaderboard/docpool"
	"github.com/AQ-MedAI/RagQALeaderboard/epochtime"
	"github.com/AQ-MedAI/RagQALeaderboard/generator"
	"github.com/AQ-MedAI/RagQALeaderboard/log"
	"github.com/AQ-MedAI/RagQALeaderboard/model"
	"github.com/AQ-MedAI/RagQALeaderboard/report"
	"github.com/AQ-MedAI/RagQALeaderboard/retriever"
	"github.com/AQ-MedAI/RagQALeaderboard/status"
)

// Runner executes evaluation runs against a fixed predictor and dataset
// source. A Runner is safe for sequential reuse; Close releases its worker
// pool.
type Runner struct {
	cfg       Config
	predictor model.Predictor
	datasets  dataset.Manager
	registry  registry.Registry
	retScorer *retriever.Scorer
	resolver  DocResolver
	pool      *ants.PoolWithFunc
}

// New creates a Runner. Configuration errors are fatal and reported here,
// before any dataset is touched.
func New(cfg Config, predictor model.Predictor, datasets dataset.Manager, opt ...Option) (*Runner, error) {
	if predictor == nil {
		return nil, fmt.Errorf("predictor is nil")
	}
	if datasets == nil {
		return nil, fmt.Errorf("dataset manager is nil")
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	retScorer, err := retriever.NewScorer(cfg.RetrieverK)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	pool, err := newItemScorePool(cfg.Concurrency)
	if err != nil {
		return nil, err
	}
	opts := newOptions(opt...)
	return &Runner{
		cfg:       cfg,
		predictor: predictor,
		datasets:  datasets,
		registry:  opts.Registry,
		retScorer: retScorer,
		resolver:  opts.Resolver,
		pool:      pool,
	}, nil
}

// Close releases the worker pool.
func (r *Runner) Close() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// Run evaluates the given dataset tags in order and returns the leaderboard
// report. Item-level failures never abort a dataset; dataset-level errors
// abort the run with the dataset tag attached.
func (r *Runner) Run(ctx context.Context, tags []string) (*report.LeaderboardReport, error) {
	if len(tags) == 0 {
		tags = r.registry.List()
	}
	if timeout := r.cfg.timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	reports := make(map[string]*report.DatasetReport, len(tags))
	for _, tag := range tags {
		dr, err := r.runDataset(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", tag, err)
		}
		reports[tag] = dr
	}
	return &report.LeaderboardReport{
		ModelName:         r.cfg.ModelName,
		DatasetReports:    reports,
		OverallMetrics:    report.Overall(reports),
		CreationTimestamp: &epochtime.EpochTime{Time: time.Now()},
	}, nil
}

// datasetRun carries the state of one dataset evaluation.
type datasetRun struct {
	runner    *Runner
	tag       string
	genScorer *generator.Scorer
	state     status.RunState
}

func (d *datasetRun) setState(s status.RunState) {
	d.state = s
	log.Debugf("dataset %s entered state %s", d.tag, s)
}

func (d *datasetRun) fail(err error) error {
	d.setState(status.RunStateFailed)
	return err
}

// runDataset evaluates one dataset through the Loading, Scoring and
// Aggregating states. Unrecoverable adapter or scorer setup errors move the
// run to Failed and propagate.
func (r *Runner) runDataset(ctx context.Context, tag string) (*report.DatasetReport, error) {
	d := &datasetRun{runner: r, tag: tag, state: status.RunStateNotStarted}

	entry, err := r.registry.Get(tag)
	if err != nil {
		return nil, d.fail(err)
	}
	var scorerOpts []generator.Option
	if entry.EMPreprocess != nil {
		scorerOpts = append(scorerOpts, generator.WithEMPreprocess(entry.EMPreprocess))
	}
	d.genScorer, err = generator.NewScorer(r.cfg.Metrics, scorerOpts...)
	if err != nil {
		return nil, d.fail(err)
	}

	d.setState(status.RunStateLoading)
	items, loadReport, err := r.datasets.Load(ctx, tag)
	if err != nil {
		return nil, d.fail(fmt.Errorf("load: %w", err))
	}

	d.setState(status.RunStateScoring)
	results := r.scoreItems(ctx, d, items)

	d.setState(status.RunStateAggregating)
	dr := &report.DatasetReport{
		DatasetTag:     tag,
		HopType:        entry.Adapter.HopType(),
		ItemScores:     results,
		SkippedRecords: loadReport.Skipped,
		Warnings:       append([]string(nil), loadReport.Warnings...),
	}
	dr.Aggregate()

	d.setState(status.RunStateDone)
	return dr, nil
}

// scoreItems dispatches items to the worker pool and collects results into
// their original slots. On cancellation it stops dispatching; items never
// dispatched are marked skipped, not silently omitted.
func (r *Runner) scoreItems(ctx context.Context, d *datasetRun, items []*dataset.EvalItem) []*report.ItemScore {
	results := make([]*report.ItemScore, len(items))
	var wg sync.WaitGroup
	for idx, item := range items {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		param := itemScoreParamPool.Get().(*itemScoreParam)
		param.idx = idx
		param.ctx = ctx
		param.item = item
		param.run = d
		param.results = results
		param.wg = &wg
		if err := r.pool.Invoke(param); err != nil {
			wg.Done()
			results[idx] = failedScore(d, item, fmt.Errorf("submit scoring task: %w", err))
			param.reset()
			itemScoreParamPool.Put(param)
		}
	}
	wg.Wait()
	for idx, item := range items {
		if results[idx] == nil {
			results[idx] = &report.ItemScore{ItemID: item.ID, Status: status.ItemStatusSkipped}
		}
	}
	return results
}

// scoreItem obtains one prediction and scores it. Prediction failures are
// recoverable: the item is marked failed with zero generator scores and the
// dataset run continues.
func (d *datasetRun) scoreItem(ctx context.Context, item *dataset.EvalItem) *report.ItemScore {
	if ctx.Err() != nil {
		return &report.ItemScore{ItemID: item.ID, Status: status.ItemStatusSkipped}
	}
	r := d.runner
	contextIDs := item.CandidateDocIDs
	if len(contextIDs) == 0 {
		contextIDs = docpool.Mix(item.GoldenDocIDs, item.NoiseDocIDs, r.cfg.NoiseDocs, r.cfg.Seed)
	}
	docs, err := r.resolver(ctx, contextIDs)
	if err != nil {
		return failedScore(d, item, fmt.Errorf("resolve documents: %w", err))
	}
	prediction, err := r.predictor.Predict(ctx, item.Question, docs)
	if err != nil {
		return failedScore(d, item, fmt.Errorf("predict: %w", err))
	}
	retrievedIDs := prediction.RetrievedDocIDs
	if len(retrievedIDs) == 0 {
		retrievedIDs = contextIDs
	}
	score := &report.ItemScore{
		ItemID:           item.ID,
		Status:           status.ItemStatusScored,
		GeneratorMetrics: d.genScorer.Score(prediction.AnswerText, item.GoldenAnswers),
	}
	if metrics, ok := r.retScorer.Score(retrievedIDs, retriever.GoldenSet(item.GoldenDocIDs)); ok {
		score.RetrieverMetrics = metrics
	}
	return score
}

func failedScore(d *datasetRun, item *dataset.EvalItem, err error) *report.ItemScore {
	log.Warnf("dataset %s item %s failed: %v", d.tag, item.ID, err)
	return &report.ItemScore{
		ItemID:           item.ID,
		Status:           status.ItemStatusFailed,
		GeneratorMetrics: d.genScorer.ZeroScores(),
		Error:            err.Error(),
	}
}
