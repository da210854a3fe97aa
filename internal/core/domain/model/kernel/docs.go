// Package kernel provides the primitives shared by the sensor coverage domain.
//
// The package includes:
//   - Point: an immutable integer grid position with Manhattan distance and row iteration (XRange)
//   - UUID: the identifier attached to every coverage scan
//
// Both are value objects guarded by guard.ConstructorGuard, so zero values
// fail Validate.
package kernel
