package strategy

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// idSalt is generated once per process so that ids never collide with ids
// minted by an earlier run, even under rapid successive calls. The exact id
// format is not part of any contract, only its uniqueness.
var idSalt = newSalt()

var idCounter atomic.Uint64

func newSalt() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// fixed salt and rely on the counter alone within this process.
		return "00000000"
	}
	return hex.EncodeToString(b)
}

// NextID returns a process-unique identifier with the given prefix.
func NextID(prefix string) string {
	return fmt.Sprintf("%s-%s-%d", prefix, idSalt, idCounter.Add(1))
}
