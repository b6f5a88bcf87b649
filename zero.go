package cryptoprim

import "runtime"

// Zero overwrites x with zeros.
// It is used for transient secrets: pre-hashed keys, inner digests, scalar copies.
func Zero(x []byte) {
	for i := range x {
		x[i] = 0
	}
	runtime.KeepAlive(x)
}
