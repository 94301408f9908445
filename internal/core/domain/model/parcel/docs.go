// Package parcel provides the domain model for shipments in the parcel service.
// It implements the Parcel aggregate root with its lifecycle state machine,
// the append-only Update audit trail, and tracking Subscriptions.
//
// Key business rules:
//   - A parcel is created in Pending status with an immutable tracking number
//   - Transitions out of Delivered, Cancelled or Returned are rejected
//   - A parcel holds a locker reference exactly while it is awaiting pickup
//   - Reaching Delivered clears both courier and locker references
//   - Every creation and transition appends one Update entry; entries are
//     never mutated or deleted
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors, and behavior methods that keep every instance in a
// consistent state.
package parcel
