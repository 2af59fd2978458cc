// Package daily turns a calendar day into a shared random source so every
// player gets the same word order and reveal pattern on that day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
)

// Key names one daily challenge: a UTC day under a deployment salt.
type Key struct {
	Salt string
	Day  time.Time
}

// For returns the key of the UTC day containing t.
func For(t time.Time, salt string) Key {
	y, m, d := t.UTC().Date()
	return Key{Salt: salt, Day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Date is the day as YYYY-MM-DD.
func (k Key) Date() string { return k.Day.Format(time.DateOnly) }

// Seeds splits HMAC-SHA256(salt, date) into the two PCG state words.
func (k Key) Seeds() (hi, lo uint64) {
	mac := hmac.New(sha256.New, []byte(k.Salt))
	mac.Write([]byte(k.Date()))
	sum := mac.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// Rand returns a fresh source for the day. Each call restarts the stream.
func (k Key) Rand() *rand.Rand {
	return random.FromPair(k.Seeds())
}
