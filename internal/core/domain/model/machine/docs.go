// Package machine provides the domain model for parcel machines and their
// lockers.
//
// Key business rules:
//   - A machine owns one address and a fixed set of lockers
//   - A locker is occupied by at most one parcel at a time
//   - Locker sizes match parcel sizes exactly; there is no CUSTOM locker
//   - Batch allocation excludes lockers already claimed earlier in the batch
package machine
