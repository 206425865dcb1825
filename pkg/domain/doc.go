// Package domain provides small, self-validating immutable value types.
//
// This package contains pure domain logic with ZERO external dependencies
// outside the Go standard library. All types in this package are:
//
//   - Immutable: observable state never changes after construction; every
//     transformation returns a freshly constructed instance
//   - Validated at construction: invariants are checked once, at the single
//     point of creation, so every instance a caller holds is guaranteed valid
//   - Safe for concurrent use: value semantics, no locks, no shared state
//   - Independent of infrastructure (no database, HTTP, logging, etc.)
//
// Construction is the only code path that can produce an instance, and all
// derivation operations route through it. A constructor that rejects its
// input returns the type's zero value together with an error matching
// ErrInvalidArgument; it never returns a partially valid instance.
//
// Surfacing failures to users, logs, or transports is the responsibility of
// calling code. The dependency direction is always:
//
//	Application → Domain (CORRECT)
//	Domain → Application (FORBIDDEN)
package domain
