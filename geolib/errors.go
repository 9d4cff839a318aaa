package geolib

import (
	"errors"
	"fmt"
)

// Contract-violation errors: the caller passed something the API documents
// as invalid. These are returned, never panicked.
var (
	// ErrDegenerateRing is returned when a ring has fewer than 3 distinct
	// vertices once closed and its repeated closing point is discounted.
	ErrDegenerateRing = errors.New("geolib: ring has fewer than 3 distinct vertices")

	// ErrInvalidRadius is returned when a buffer radius is not strictly
	// greater than Epsilon.
	ErrInvalidRadius = errors.New("geolib: buffer radius must be greater than epsilon")

	// ErrInvalidSemicircleSteps is returned when a buffer is asked to
	// sample a semicircle with fewer than 2 points.
	ErrInvalidSemicircleSteps = errors.New("geolib: semicircle sample count must be at least 2")
)

// ErrOverlayFailure is the single sentinel every geometric-failure error
// from the overlay engine wraps. Callers can test for any such failure with
// errors.Is(err, ErrOverlayFailure) without caring which specific cause
// produced it.
var ErrOverlayFailure = errors.New("geolib: overlay operation failed")

// ErrIncompleteRing indicates the ring-harvesting walk ran out of edges to
// follow before returning to its starting vertex.
var ErrIncompleteRing = fmt.Errorf("%w: incomplete ring", ErrOverlayFailure)

// ErrAmbiguousRingAssignment indicates an inner ring's sample point landed
// exactly on an outer ring's boundary (point index 0) during reconstruction,
// or lay inside no outer ring at all, so the inner ring cannot be
// unambiguously assigned to an outer one.
var ErrAmbiguousRingAssignment = fmt.Errorf("%w: ambiguous ring assignment", ErrOverlayFailure)
