package generator

import (
	"fmt"

	"github.com/weiawesome/idkit/pkg/eid"
)

// DefaultExternalPrefix is the prefix used when none is configured.
const DefaultExternalPrefix = "user"

// ExternalGenerator issues prefixed random 128-bit IDs backed by pkg/eid.
// These are the IDs handed to the outside world; the prefix makes them
// self-describing in logs and URLs.
type ExternalGenerator struct {
	prefix string
}

// NewExternalGenerator creates an external strategy with the given prefix.
func NewExternalGenerator(prefix string) (*ExternalGenerator, error) {
	if prefix == "" {
		return nil, fmt.Errorf("external prefix must not be empty")
	}
	return &ExternalGenerator{prefix: prefix}, nil
}

func (g *ExternalGenerator) Generate() (string, error) {
	return eid.New(g.prefix).String(), nil
}

func (g *ExternalGenerator) GenerateBatch(count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, eid.New(g.prefix).String())
	}
	return ids, nil
}

// Validate checks the ID against this generator's configured prefix; an
// otherwise well-formed ID with a different prefix is rejected.
func (g *ExternalGenerator) Validate(id string) (bool, string) {
	parsed, err := eid.Parse(id)
	if err != nil {
		return false, err.Error()
	}
	if parsed.Prefix != g.prefix {
		return false, fmt.Sprintf("expected prefix %q, got %q", g.prefix, parsed.Prefix)
	}
	return true, ""
}

// Parse inspects any well-formed external ID regardless of prefix.
func (g *ExternalGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := eid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Prefix: parsed.Prefix,
		UUID:   parsed.UUID().String(),
	}, nil
}
