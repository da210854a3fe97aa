// Package area models sensor coverage on the grid.
//
// An Area is the diamond of positions within a sensor's Manhattan radius,
// the radius being the distance to the beacon the sensor reported. Every
// position inside an Area other than that beacon is provably beacon-free.
//
// Intersecting an Area with a horizontal row gives a Span, an inclusive
// x-interval. MergeSpans coalesces the spans of many areas so their union
// can be measured without visiting each position.
package area
