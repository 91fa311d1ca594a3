package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	sv "github.com/uchkunrakhimow/smart-schema-validator"
)

// Validator is the interface the pool uses to validate documents.
// engine.Validator satisfies it.
type Validator interface {
	ValidateJSON(data []byte) *sv.Result
}

// Pool manages a pool of worker goroutines for parallel batch validation.
// Each individual document is still validated synchronously; the pool only
// parallelizes across independent documents.
type Pool struct {
	workers    int
	jobsChan   chan Job
	resultChan chan *JobResult
	validator  Validator
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	// mu orders submissions against shutdown: Submit holds the read lock
	// while sending, so Close cannot close jobsChan mid-send.
	mu     sync.RWMutex
	closed atomic.Bool

	// Metrics
	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	totalDuration atomic.Uint64
}

// NewPool creates a new worker pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(validator Validator, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		validator:  validator,
		ctx:        ctx,
		cancel:     cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit submits a job to the pool for processing.
// This method blocks if the job queue is full. It returns false if the
// pool is closed, and is safe to call concurrently with Close.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// TrySubmit submits a job without blocking.
// Returns false if the job queue is full or the pool is closed.
func (p *Pool) TrySubmit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel for receiving job results.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// Close shuts down the pool and waits for all workers to finish.
// Pending results are discarded; use CloseAndWait to collect them.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return // Already closed
	}

	// Cancel first so a Submit blocked on a full queue gives up its read
	// lock, then close the jobs channel once no send is in flight.
	p.cancel()

	// Drain results in background to prevent worker deadlock
	done := make(chan struct{})
	go func() {
		for range p.resultChan {
			// Discard results
		}
		close(done)
	}()

	p.mu.Lock()
	close(p.jobsChan)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.resultChan)
	<-done
}

// CloseAndWait closes the pool and collects all pending results.
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	// Collect concurrently so workers and any in-flight Submit keep making
	// progress while we wait to close the jobs channel.
	results := make([]*JobResult, 0)
	invalid := 0
	done := make(chan struct{})
	go func() {
		for result := range p.resultChan {
			results = append(results, result)
			if result.Result != nil && !result.Result.Valid {
				invalid++
			}
		}
		close(done)
	}()

	p.mu.Lock()
	close(p.jobsChan)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.resultChan)
	<-done
	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		InvalidJobs:   invalid,
		TotalDuration: time.Duration(p.totalDuration.Load()),
	}
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	AvgDuration   time.Duration
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / completed)
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		result := p.processJob(job)
		p.jobsCompleted.Add(1)
		p.totalDuration.Add(uint64(result.Duration))

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

func (p *Pool) processJob(job Job) *JobResult {
	start := time.Now()

	return &JobResult{
		ID:       job.ID,
		Result:   p.validator.ValidateJSON(job.Document),
		Duration: time.Since(start),
	}
}
