package httpd

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// connID tags log lines belonging to one connection.
func connID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	// Fallback to a timestamp-derived ID if rand fails (unlikely)
	t := time.Now().UnixNano()
	for i := range b {
		b[i] = byte(t >> (uint(i) * 8))
	}
	return hex.EncodeToString(b[:])
}
