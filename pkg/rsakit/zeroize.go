package rsakit

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites the provided slice with zeros and keeps the buffer
// alive past the stores so the compiler cannot elide them.
//
// Go's garbage collector may already have copied the data elsewhere, so this
// is best-effort sanitization, which is the practical ceiling for sensitive
// memory in pure Go (see golang/go#33325).
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// ZeroizeBig overwrites the limbs of x with zeros and resets x to zero. The
// key generator uses it to wipe the prime factors and the totient, which
// must not outlive generation. The same best-effort caveats as ZeroizeBytes
// apply.
func ZeroizeBig(x *big.Int) {
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
	runtime.KeepAlive(words)
}
