// package mac provides an interface for Message Authentication Codes.
package mac

// Scheme is a MAC keyed at construction.
type Scheme interface {
	// Compute returns the tag for msg.
	Compute(msg []byte) ([]byte, error)
	// Verify checks if tag is the correct tag for msg.
	// Verify compares tags in constant time and never returns an error;
	// any failure, including one in the underlying primitive, is reported as false.
	Verify(tag, msg []byte) bool
	// Size is the length of the tags produced by Compute.
	Size() int
}
