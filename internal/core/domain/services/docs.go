// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the shipping system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - LockerAllocator: A domain service for placing parcels into machine lockers
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
