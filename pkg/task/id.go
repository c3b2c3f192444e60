package task

import (
	"crypto/rand"
	"fmt"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 4
)

// newID returns a short random ID not present in taken. Four base36
// characters keep IDs easy to type; the caller-supplied set guarantees
// uniqueness across the open and done lists. An all-digit ID would be
// indistinguishable from a task number, so those are rerolled.
func newID(taken map[string]bool) string {
	for {
		buf := make([]byte, idLength)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms.
			panic(fmt.Sprintf("task: read random bytes: %v", err))
		}
		allDigits := true
		for i, b := range buf {
			buf[i] = idAlphabet[int(b)%len(idAlphabet)]
			if buf[i] > '9' {
				allDigits = false
			}
		}
		id := string(buf)
		if !allDigits && !taken[id] {
			return id
		}
	}
}
