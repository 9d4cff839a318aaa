// Package geolib provides a pure Go implementation of 2D planar Boolean
// operations (union, intersection, difference) and Minkowski-style edge
// buffering over polygonal regions, together with the geometric predicates
// those operations are built on: segment intersection, winding-parity point
// location, convex hull, and ring orientation correction.
//
// This is a port of navigine/geometry's geolib module, a planar overlay
// engine originally written for indoor-mapping and navigation systems that
// combine, subtract, inflate, and test containment between coordinate
// tagged polygonal features.
//
// # Overview
//
// geolib implements an inexact floating-point engine: every coordinate
// entering the overlay is snapped to a fixed absolute tolerance (Epsilon),
// and segment intersection snaps its parameters to exact 0/1 at shared
// endpoints. There is no spatial indexing - intersection detection is
// pairwise - and no exact/rational arithmetic. Callers operating in
// geographic coordinates are expected to reproject into a local metric
// frame first; see GeoPoint.
//
// # Error handling
//
// Functions that can fail on malformed input return an error as their last
// return value:
//   - ErrDegenerateRing, ErrInvalidRadius, ErrInvalidSemicircleSteps: contract
//     violations - the caller passed something the API documents as invalid.
//   - ErrIncompleteRing or ErrAmbiguousRingAssignment (both wrap ErrOverlayFailure):
//     a geometric failure raised by the overlay engine itself when ring
//     harvesting cannot close, or when ring-to-polygon reconstruction can't
//     unambiguously assign a hole to an outer ring.
//
// Internal invariants that should never fail on correct inputs (e.g. "an
// overlay edge's color is 0 or 1") are checked with
// github.com/arl/assertgo, which compiles to a no-op unless the module is
// built with the "debug" build tag.
//
// # Coordinate systems
//
// geolib's engine operates on Point, a plain (X, Y) pair in a local metric
// frame (such as metres). GeoPoint is provided as a second concrete point
// type for callers working in geographic coordinates (longitude, latitude);
// GeoPoint.ToPoint performs the field mapping used throughout (X =
// longitude, Y = latitude) but does not reproject - true geographic-to-local
// reprojection around a bind point is an external concern this package does
// not implement.
package geolib

// Point is a finite (X, Y) pair in a local, metric frame. All of geolib's
// predicates and operations are defined in terms of Point; GeoPoint converts
// into Point at the caller's boundary.
type Point struct {
	X, Y float64
}

// GeoPoint is a point in geographic coordinates (longitude, latitude). It
// mirrors the original library's GeoPoint, whose X accessor returns
// longitude and whose Y accessor returns latitude.
type GeoPoint struct {
	Longitude, Latitude float64
}

// ToPoint maps a GeoPoint onto geolib's canonical Point shape (X =
// longitude, Y = latitude) without reprojection. Operations that require a
// metric frame (area, buffer, Boolean operations) expect the caller to have
// reprojected geographic input into a local frame before converting with
// ToPoint; see the package doc for why reprojection itself is out of scope.
func (g GeoPoint) ToPoint() Point {
	return Point{X: g.Longitude, Y: g.Latitude}
}

// GeoPointFromPoint is the inverse of GeoPoint.ToPoint.
func GeoPointFromPoint(p Point) GeoPoint {
	return GeoPoint{Longitude: p.X, Latitude: p.Y}
}
