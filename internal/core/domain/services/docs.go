// Package services provides the domain services that work across many sensor
// reports at once.
//
// The package includes:
//   - CoverageAnalyzer: intersects every report's coverage area with a row and
//     merges the resulting spans
//   - SpanMergeCounter: counts beacon-free positions from the merged spans
//   - PointSetCounter: counts the same positions by visiting each one
//
// Both counters implement CoverageCounter and always agree; the span merge is
// O(n log n) in the number of reports regardless of coordinate magnitude, the
// point set is O(n * w) in the covered width w.
package services
