package common

import "crypto/rand"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateRandByteArray returns n bytes from crypto/rand. It panics if the
// system randomness source fails, which only happens on a broken host.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
