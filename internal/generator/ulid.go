package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

const ulidLength = 26

// ULIDGenerator issues lexicographically sortable IDs with a millisecond
// timestamp component.
type ULIDGenerator struct{}

// NewULIDGenerator creates a ULID strategy.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Generate() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("generate ulid: %w", err)
	}
	return id.String(), nil
}

func (g *ULIDGenerator) GenerateBatch(count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (g *ULIDGenerator) Validate(id string) (bool, string) {
	if len(id) != ulidLength {
		return false, fmt.Sprintf("expected length %d, got %d", ulidLength, len(id))
	}
	if _, err := ulid.ParseStrict(id); err != nil {
		return false, fmt.Sprintf("not a valid ULID: %v", err)
	}
	return true, ""
}

func (g *ULIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return nil, fmt.Errorf("not a valid ULID: %w", err)
	}
	return &ParseResult{
		TimestampMs:   int64(parsed.Time()),
		RandomPayload: hex.EncodeToString(parsed.Entropy()),
	}, nil
}
