package generator

import (
	"fmt"

	"github.com/weiawesome/idkit/pkg/requestid"
)

// maxTopCharIndex bounds the last character of a full-width ID: it carries
// only the top 4 bits of the value, so its alphabet index is below 16.
const maxTopCharIndex = 16

// alphabetIndex maps an ASCII byte to its alphabet position, -1 when the
// byte is not part of the alphabet.
var alphabetIndex = func() (idx [256]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(requestid.Alphabet); i++ {
		idx[requestid.Alphabet[i]] = int8(i)
	}
	return idx
}()

// SequenceGenerator issues compact fixed-width counter IDs backed by
// pkg/requestid. IDs are unique within the process; uniqueness across
// processes or restarts is out of scope for this kind.
type SequenceGenerator struct {
	gen *requestid.Generator
}

// NewSequenceGenerator creates a sequence strategy with the given
// character width and mixing mode. Width follows the pkg/requestid
// contract (1 through 11).
func NewSequenceGenerator(width int, mixed bool) (*SequenceGenerator, error) {
	gen, err := requestid.New(width, mixed)
	if err != nil {
		return nil, err
	}
	return &SequenceGenerator{gen: gen}, nil
}

func (g *SequenceGenerator) Generate() (string, error) {
	return g.gen.NextString(), nil
}

func (g *SequenceGenerator) GenerateBatch(count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, g.gen.NextString())
	}
	return ids, nil
}

func (g *SequenceGenerator) Validate(id string) (bool, string) {
	if len(id) != g.gen.Width() {
		return false, fmt.Sprintf("expected length %d, got %d", g.gen.Width(), len(id))
	}
	for i := 0; i < len(id); i++ {
		if alphabetIndex[id[i]] < 0 {
			return false, fmt.Sprintf("character %q not in alphabet", id[i])
		}
	}
	if len(id) == requestid.WidthWide && alphabetIndex[id[len(id)-1]] >= maxTopCharIndex {
		return false, "top character encodes more than 64 bits"
	}
	return true, ""
}

// Parse decodes the ID back to its numeric value, reading characters as
// 6-bit groups from least significant upward. For a mixed generator the
// reported value is the mixed one; the mixer exposes no inverse.
func (g *SequenceGenerator) Parse(id string) (*ParseResult, error) {
	if valid, reason := g.Validate(id); !valid {
		return nil, fmt.Errorf("invalid sequence id: %s", reason)
	}

	var v uint64
	for i := 0; i < len(id); i++ {
		v |= uint64(alphabetIndex[id[i]]) << (6 * i)
	}

	return &ParseResult{
		Value: v,
		Width: g.gen.Width(),
		Mixed: g.gen.Mixed(),
	}, nil
}
