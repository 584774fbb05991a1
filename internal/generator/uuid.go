package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID strategy.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}

func (g *UUIDGenerator) GenerateBatch(count int) ([]string, error) {
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

func (g *UUIDGenerator) Validate(id string) (bool, string) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Sprintf("not a valid UUID: %v", err)
	}
	if parsed.Version() != 4 {
		return false, fmt.Sprintf("expected version 4, got version %d", parsed.Version())
	}
	return true, ""
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("not a valid UUID: %w", err)
	}
	return &ParseResult{
		UUIDVersion: int(parsed.Version()),
		UUIDVariant: variantName(parsed.Variant()),
	}, nil
}

func variantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "Reserved"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	default:
		return "Invalid"
	}
}
