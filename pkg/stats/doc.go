// Package stats computes descriptive statistics over numeric slices.
// Empty input and sample statistics over a single point are reported as
// typed errors rather than NaN, so callers can branch on them.
package stats
