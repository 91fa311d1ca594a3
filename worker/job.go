package worker

import (
	"time"

	sv "github.com/uchkunrakhimow/smart-schema-validator"
)

// Job represents one document to validate.
type Job struct {
	// ID is a caller-chosen identifier used to correlate results.
	ID string

	// Document is the raw JSON document to validate.
	Document []byte
}

// JobResult represents the outcome of a single job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Result contains the validation result.
	Result *sv.Result

	// Duration is the time taken to validate the document.
	Duration time.Duration
}

// BatchResult aggregates results from multiple jobs.
type BatchResult struct {
	// Results contains all job results.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs completed.
	CompletedJobs int

	// InvalidJobs is the number of jobs whose document failed validation.
	InvalidJobs int

	// TotalDuration is the summed validation time across all jobs.
	TotalDuration time.Duration
}

// HasInvalid returns true if any job's document failed validation.
func (br *BatchResult) HasInvalid() bool {
	return br.InvalidJobs > 0
}

// ErrorCount returns the total number of validation errors across all results.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Result != nil {
			count += r.Result.ErrorCount()
		}
	}
	return count
}
