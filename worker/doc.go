// Package worker provides a worker pool for parallel batch validation.
//
// Validation of a single document is always synchronous; the pool only
// spreads independent documents across goroutines. Because schemas and
// rules are read-only, one engine can serve every worker.
//
// Example usage:
//
//	pool := worker.NewPool(validator, 4)
//
//	for i, doc := range documents {
//	    pool.Submit(worker.Job{ID: strconv.Itoa(i), Document: doc})
//	}
//
//	go func() {
//	    for result := range pool.Results() {
//	        if !result.Result.Valid {
//	            // inspect result.Result.Errors
//	        }
//	    }
//	}()
//	pool.Close()
//
// For one-shot batches with order-preserving results, use ValidateBatch.
package worker
