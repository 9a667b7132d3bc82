// Package progress computes ORS progress indicators for one rater: the
// expected treatment response, targets, milestones, validity flags and
// exclusion decisions.
//
// Every function is pure. An Engine holds only an immutable coefficient
// provider and may be shared across goroutines.
package progress
