package generator

import (
	"encoding/hex"
	"fmt"

	"github.com/segmentio/ksuid"
)

const ksuidLength = 27

// KSUIDGenerator issues K-sortable IDs with a second-resolution timestamp
// component.
type KSUIDGenerator struct{}

// NewKSUIDGenerator creates a KSUID strategy.
func NewKSUIDGenerator() *KSUIDGenerator {
	return &KSUIDGenerator{}
}

func (g *KSUIDGenerator) Generate() (string, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate ksuid: %w", err)
	}
	return id.String(), nil
}

func (g *KSUIDGenerator) GenerateBatch(count int) ([]string, error) {
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

func (g *KSUIDGenerator) Validate(id string) (bool, string) {
	if len(id) != ksuidLength {
		return false, fmt.Sprintf("expected length %d, got %d", ksuidLength, len(id))
	}
	if _, err := ksuid.Parse(id); err != nil {
		return false, fmt.Sprintf("not a valid KSUID: %v", err)
	}
	return true, ""
}

func (g *KSUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("not a valid KSUID: %w", err)
	}
	return &ParseResult{
		TimestampMs:   parsed.Time().UnixMilli(),
		RandomPayload: hex.EncodeToString(parsed.Payload()),
	}, nil
}
