// Package eid builds external identifiers: a short caller-chosen prefix
// joined to a random 128-bit payload rendered in base36. The prefix makes
// the ID self-describing in logs and URLs ("user-...", "room-..."), while
// the payload carries the uniqueness. Use these for values that leave the
// process; they are longer and slower than requestid IDs but globally
// unique.
package eid

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// ExternalID pairs a prefix with 16 random bytes. The zero value is valid
// but useless; construct with New or Parse.
type ExternalID struct {
	Prefix string
	Bytes  [16]byte
}

// New returns an ExternalID with the given prefix and a fresh random
// payload drawn from a version 4 UUID.
func New(prefix string) ExternalID {
	return ExternalID{
		Prefix: prefix,
		Bytes:  [16]byte(uuid.New()),
	}
}

// UUID returns the payload as a UUID.
func (e ExternalID) UUID() uuid.UUID {
	return uuid.UUID(e.Bytes)
}

// String renders the ID as "<prefix>-<payload>", the payload being the
// 16 bytes read as one big-endian integer in lowercase base36 (at most 25
// characters, no padding).
func (e ExternalID) String() string {
	n := new(big.Int).SetBytes(e.Bytes[:])
	return e.Prefix + "-" + n.Text(36)
}

// Parse inverts String. The prefix may itself contain '-', so the payload
// is taken after the last separator; it must be non-empty lowercase base36
// and fit in 128 bits.
func Parse(s string) (ExternalID, error) {
	sep := strings.LastIndexByte(s, '-')
	if sep < 0 {
		return ExternalID{}, fmt.Errorf("eid: %q has no prefix separator", s)
	}
	prefix, payload := s[:sep], s[sep+1:]
	if payload == "" {
		return ExternalID{}, fmt.Errorf("eid: %q has an empty payload", s)
	}
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return ExternalID{}, fmt.Errorf("eid: payload character %q is not lowercase base36", c)
		}
	}

	n, ok := new(big.Int).SetString(payload, 36)
	if !ok {
		return ExternalID{}, fmt.Errorf("eid: %q is not valid base36", payload)
	}
	if n.BitLen() > 128 {
		return ExternalID{}, fmt.Errorf("eid: payload %q exceeds 128 bits", payload)
	}

	e := ExternalID{Prefix: prefix}
	n.FillBytes(e.Bytes[:])
	return e, nil
}

// MarshalText renders the canonical string form, so the type serializes as
// a single JSON string.
func (e ExternalID) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses the canonical string form in place.
func (e *ExternalID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
