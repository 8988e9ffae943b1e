// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel dispatches file scans across a bounded worker pool.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"secrecy/internal/core"
	"secrecy/internal/detector"
	"secrecy/internal/source"
)

// Pool scans files concurrently. Every job is a pure function of its content
// and path plus the shared engine, so the only cross-job state is the
// mutex-guarded report context.
type Pool struct {
	engine  *core.Engine
	rctx    *detector.ReportContext
	workers int

	jobs chan source.File
	wg   sync.WaitGroup
}

// NewPool creates a pool with the given number of workers; zero or negative
// means one worker per CPU.
func NewPool(engine *core.Engine, rctx *detector.ReportContext, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		engine:  engine,
		rctx:    rctx,
		workers: workers,
		jobs:    make(chan source.File, workers*2),
	}
}

// Start launches the worker goroutines. Workers exit when the job channel is
// closed or ctx is cancelled; cancellation abandons queued jobs without
// touching findings already recorded.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// Submit queues one file for scanning. It returns ctx.Err() if the scan was
// cancelled before the job could be queued.
func (p *Pool) Submit(ctx context.Context, file source.File) error {
	select {
	case p.jobs <- file:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait closes the job queue and blocks until all in-flight scans finish.
func (p *Pool) Wait() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case file, ok := <-p.jobs:
			if !ok {
				return
			}
			p.engine.CheckFileAt(p.rctx, file.Content, file.Path, file.Commit)
		case <-ctx.Done():
			return
		}
	}
}
