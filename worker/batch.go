package worker

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// BatchValidator validates a slice of documents in parallel while
// preserving input order in the results.
type BatchValidator struct {
	validator Validator
	workers   int
}

// NewBatchValidator creates a new batch validator.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewBatchValidator(validator Validator, workers int) *BatchValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchValidator{
		validator: validator,
		workers:   workers,
	}
}

// ValidateBatch validates multiple documents in parallel.
// Results[i] corresponds to documents[i].
func (bv *BatchValidator) ValidateBatch(ctx context.Context, documents [][]byte) *BatchResult {
	if len(documents) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	// Small batches don't pay for parallelism
	if len(documents) <= 2 {
		return bv.validateSequential(ctx, documents)
	}

	return bv.validateParallel(ctx, documents)
}

func (bv *BatchValidator) validateSequential(ctx context.Context, documents [][]byte) *BatchResult {
	br := &BatchResult{
		Results:   make([]*JobResult, 0, len(documents)),
		TotalJobs: len(documents),
	}

	for i, doc := range documents {
		select {
		case <-ctx.Done():
			return br
		default:
		}

		start := time.Now()
		result := bv.validator.ValidateJSON(doc)
		jr := &JobResult{
			ID:       strconv.Itoa(i),
			Result:   result,
			Duration: time.Since(start),
		}
		br.Results = append(br.Results, jr)
		br.CompletedJobs++
		br.TotalDuration += jr.Duration
		if !result.Valid {
			br.InvalidJobs++
		}
	}

	return br
}

func (bv *BatchValidator) validateParallel(ctx context.Context, documents [][]byte) *BatchResult {
	numWorkers := bv.workers
	if numWorkers > len(documents) {
		numWorkers = len(documents)
	}

	jobs := make(chan indexedJob, len(documents))
	results := make([]*JobResult, len(documents))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				start := time.Now()
				result := bv.validator.ValidateJSON(job.document)
				results[job.index] = &JobResult{
					ID:       strconv.Itoa(job.index),
					Result:   result,
					Duration: time.Since(start),
				}
			}
		}()
	}

	for i, doc := range documents {
		jobs <- indexedJob{index: i, document: doc}
	}
	close(jobs)
	wg.Wait()

	br := &BatchResult{
		Results:   results,
		TotalJobs: len(documents),
	}
	for _, jr := range results {
		if jr == nil {
			continue
		}
		br.CompletedJobs++
		br.TotalDuration += jr.Duration
		if jr.Result != nil && !jr.Result.Valid {
			br.InvalidJobs++
		}
	}
	return br
}

type indexedJob struct {
	index    int
	document []byte
}

// ValidateBatch is a convenience function for one-off batch validation.
func ValidateBatch(ctx context.Context, validator Validator, documents [][]byte) *BatchResult {
	return NewBatchValidator(validator, runtime.NumCPU()).ValidateBatch(ctx, documents)
}
