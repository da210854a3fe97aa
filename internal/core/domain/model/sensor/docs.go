// Package sensor models the readings the coverage tool consumes.
//
// The package includes:
//   - Sensor: the location of a deployed sensor
//   - Beacon: the location of the beacon a sensor reports as its closest
//   - Report: one (Sensor, Beacon) pair, as read from one input line
//   - ParseReport / ParseReports: the text format
//     "Sensor at x=<int>, y=<int>: closest beacon is at x=<int>, y=<int>"
//
// Sensor and Beacon both hold a kernel.Point but are distinct types, so a
// beacon can never be passed where a sensor is expected.
package sensor
