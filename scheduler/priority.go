package scheduler

import "math"

// Named priority conventions. Priority is a plain int and larger runs
// first; these names are a calling convention, not an enforced enum, so
// any integer between them is valid for fine-grained ordering.
const (
	PriorityLowest     = math.MinInt32
	PriorityLow        = 10
	PriorityMedium     = 50
	PriorityMediumHigh = 75
	PriorityHigh       = 100
	PriorityHighest    = math.MaxInt32
)
