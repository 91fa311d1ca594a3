package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Min requires a number greater than or equal to min.
func Min(min float64) Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := toFloat64(value)
			return ok && n >= min
		},
		Message: fieldMessage(fmt.Sprintf("must be at least %s", formatNumber(min))),
	}
}

// Max requires a number less than or equal to max.
func Max(max float64) Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := toFloat64(value)
			return ok && n <= max
		},
		Message: fieldMessage(fmt.Sprintf("must be at most %s", formatNumber(max))),
	}
}

// Positive requires a number greater than zero.
func Positive() Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := toFloat64(value)
			return ok && n > 0
		},
		Message: fieldMessage("must be positive"),
	}
}

// Negative requires a number less than zero.
func Negative() Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := toFloat64(value)
			return ok && n < 0
		},
		Message: fieldMessage("must be negative"),
	}
}

// Integer requires a number with no fractional part.
func Integer() Rule {
	return Rule{
		Check:   isWholeNumber,
		Message: fieldMessage("must be an integer"),
	}
}

// OneOfNumber requires the number to equal one of the allowed options.
func OneOfNumber(options ...float64) Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := toFloat64(value)
			if !ok {
				return false
			}
			for _, o := range options {
				if n == o {
					return true
				}
			}
			return false
		},
		Message: fieldMessage(fmt.Sprintf("must be one of: %s", joinNumbers(options))),
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func joinNumbers(ns []float64) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = formatNumber(n)
	}
	return strings.Join(parts, ", ")
}
