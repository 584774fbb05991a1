// Package generator implements the ID strategy catalog. Every strategy
// satisfies the same Generator interface so transports and the CLI can
// treat kinds uniformly.
package generator

import "sort"

// Generator defines the interface for ID generation, validation, and parsing.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the fields recovered from an ID. Strategies set only
// the fields they can recover; the rest stay zero and are omitted from
// JSON output.
type ParseResult struct {
	Value         uint64 `json:"value,omitempty"`          // sequence: decoded value
	Width         int    `json:"width,omitempty"`          // sequence: character width
	Mixed         bool   `json:"mixed,omitempty"`          // sequence: value was mixed before encoding
	Prefix        string `json:"prefix,omitempty"`         // external
	UUID          string `json:"uuid,omitempty"`           // external: payload in canonical UUID form
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`   // snowflake/ulid/ksuid: absolute unix ms
	MachineID     int64  `json:"machine_id,omitempty"`     // snowflake
	Sequence      int64  `json:"sequence,omitempty"`       // snowflake
	UUIDVersion   int    `json:"uuid_version,omitempty"`   // uuid
	UUIDVariant   string `json:"uuid_variant,omitempty"`   // uuid
	RandomPayload string `json:"random_payload,omitempty"` // ulid/ksuid: hex-encoded entropy
	IDLength      int    `json:"id_length,omitempty"`      // nanoid/cuid2
	Alphabet      string `json:"alphabet,omitempty"`       // nanoid
}

// Kind names a registered ID strategy.
type Kind string

const (
	KindSequence  Kind = "sequence"
	KindExternal  Kind = "external"
	KindSnowflake Kind = "snowflake"
	KindUUID      Kind = "uuid"
	KindULID      Kind = "ulid"
	KindKSUID     Kind = "ksuid"
	KindNanoID    Kind = "nanoid"
	KindCUID2     Kind = "cuid2"
)

// Registry maps kind names to constructed strategies.
type Registry map[Kind]Generator

// Get looks up a strategy by kind name.
func (r Registry) Get(kind string) (Generator, bool) {
	g, ok := r[Kind(kind)]
	return g, ok
}

// Kinds returns the registered kind names in sorted order.
func (r Registry) Kinds() []string {
	kinds := make([]string, 0, len(r))
	for k := range r {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}
