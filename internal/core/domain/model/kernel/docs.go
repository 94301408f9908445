// Package kernel provides shared value objects used across all domain models
// in the parcel service.
//
// The package includes:
//   - UUID: validated wrapper around github.com/google/uuid for entity identity
//   - TrackingNumber: the public SPOT-prefixed parcel identifier
//
// These types are immutable value objects. Their zero values are invalid and
// fail Validate, which forces construction through the provided factory
// functions and keeps identifiers well-formed throughout the domain.
package kernel
