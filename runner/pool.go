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
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	"github.com/AQ-MedAI/RagQALeaderboard/report"
)

type itemScoreParam struct {
	idx     int
	ctx     context.Context
	item    *dataset.EvalItem
	run     *datasetRun
	results []*report.ItemScore
	wg      *sync.WaitGroup
}

func (p *itemScoreParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.item = nil
	p.run = nil
	p.results = nil
	p.wg = nil
}

var itemScoreParamPool = &sync.Pool{
	New: func() any { return new(itemScoreParam) },
}

// newItemScorePool creates the bounded worker pool that scores items.
// Each worker writes its result into the item's original slot, so the final
// score order matches the dataset order no matter when workers finish.
func newItemScorePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*itemScoreParam)
		if !ok {
			panic("item score pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			itemScoreParamPool.Put(param)
		}()
		param.results[param.idx] = param.run.scoreItem(param.ctx, param.item)
	})
	if err != nil {
		return nil, fmt.Errorf("create item score pool: %w", err)
	}
	return pool, nil
}
