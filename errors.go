package p256k1

import "errors"

// DomainOutOfRange is returned by debug-checked constructors when an input
// magnitude precondition is violated, e.g. constructing an Fp from a value
// that is not < 2p. Release builds (debugAssertions == false) skip the
// check and assume the precondition holds.
var DomainOutOfRange = errors.New("p256k1: value out of domain range")

// CapabilityUnavailable is returned by RequireIFMA when the vectorized
// path is selected on hardware lacking the IFMA instruction set. The
// arithmetic core never returns this itself; it is surfaced by the
// capability wrapper a caller consults before choosing the vector path.
var CapabilityUnavailable = errors.New("p256k1: IFMA capability unavailable")

// debugAssertions gates the expensive precondition checks in the
// constructors. Mirrors the teacher's magnitude/normalized bookkeeping:
// cheap in release, informative while developing.
const debugAssertions = true
