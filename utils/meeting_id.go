package utils

import (
	"crypto/rand"
	"math/big"
)

const meetingIDLength = 10

// GenerateMeetingID returns a 10-digit meeting ID drawn from a
// cryptographically random source. Uniqueness is not checked against
// existing meetings; callers must tolerate the (remote) collision.
func GenerateMeetingID() string {
	id := make([]byte, meetingIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		id[i] = byte('0' + n.Int64())
	}
	return string(id)
}
