// package scalarmult provides an interface for X25519 scalar multiplication on Curve25519 (RFC 7748).
//
// Providers perform the field arithmetic only. They do not validate, clamp beyond what RFC 7748's
// decodeScalar25519 requires, or reject low order points: for those the output is all zeros.
package scalarmult

const (
	ScalarSize = 32
	PointSize  = 32
)

type (
	Scalar = [ScalarSize]byte
	Point  = [PointSize]byte
)

// Basepoint is the u-coordinate 9.
var Basepoint = Point{9}

type Provider interface {
	// ScalarMult sets dst to scalar * point.
	ScalarMult(dst *Point, scalar *Scalar, point *Point) error
	// ScalarBaseMult sets dst to scalar * Basepoint.
	ScalarBaseMult(dst *Point, scalar *Scalar) error
}
