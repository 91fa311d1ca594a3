package schemavalidator

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks validation performance using lock-free atomic operations.
// All methods are safe for concurrent use, so one Metrics instance can be
// shared by validations running in parallel against the same schema.
type Metrics struct {
	// Validation counts
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Total errors reported
	errorsTotal atomic.Uint64

	// Per-code error counts
	errorsByCode sync.Map // map[ErrorCode]*atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first value becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed top-level validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.validationTimeMin.Load()
		if ns >= old {
			break
		}
		if m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.validationTimeMax.Load()
		if ns <= old {
			break
		}
		if m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordError records a reported validation error by code.
func (m *Metrics) RecordError(code ErrorCode) {
	m.errorsTotal.Add(1)
	m.getOrCreateCodeCounter(code).Add(1)
}

func (m *Metrics) getOrCreateCodeCounter(code ErrorCode) *atomic.Uint64 {
	if v, ok := m.errorsByCode.Load(code); ok {
		return v.(*atomic.Uint64)
	}
	actual, _ := m.errorsByCode.LoadOrStore(code, &atomic.Uint64{})
	return actual.(*atomic.Uint64)
}

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationsValid returns the number of valid validations.
func (m *Metrics) ValidationsValid() uint64 {
	return m.validationsValid.Load()
}

// ValidationRate returns the fraction of valid validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the average validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total)
}

// MinValidationTime returns the minimum validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minVal := m.validationTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxValidationTime returns the maximum validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load())
}

// ErrorsTotal returns the total number of errors reported.
func (m *Metrics) ErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// ErrorsByCode returns the number of errors reported with the given code.
func (m *Metrics) ErrorsByCode(code ErrorCode) uint64 {
	if v, ok := m.errorsByCode.Load(code); ok {
		return v.(*atomic.Uint64).Load()
	}
	return 0
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	ValidationsTotal uint64               `json:"validationsTotal"`
	ValidationsValid uint64               `json:"validationsValid"`
	ValidationRate   float64              `json:"validationRate"`
	AvgDuration      time.Duration        `json:"avgDuration"`
	MinDuration      time.Duration        `json:"minDuration"`
	MaxDuration      time.Duration        `json:"maxDuration"`
	ErrorsTotal      uint64               `json:"errorsTotal"`
	ErrorsByCode     map[ErrorCode]uint64 `json:"errorsByCode,omitempty"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		ValidationsTotal: m.ValidationsTotal(),
		ValidationsValid: m.ValidationsValid(),
		ValidationRate:   m.ValidationRate(),
		AvgDuration:      m.AverageValidationTime(),
		MinDuration:      m.MinValidationTime(),
		MaxDuration:      m.MaxValidationTime(),
		ErrorsTotal:      m.ErrorsTotal(),
	}
	m.errorsByCode.Range(func(key, value any) bool {
		if s.ErrorsByCode == nil {
			s.ErrorsByCode = make(map[ErrorCode]uint64)
		}
		s.ErrorsByCode[key.(ErrorCode)] = value.(*atomic.Uint64).Load()
		return true
	})
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.errorsTotal.Store(0)
	m.errorsByCode.Range(func(key, _ any) bool {
		m.errorsByCode.Delete(key)
		return true
	})
}
