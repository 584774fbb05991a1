package generator

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Bit layout of a snowflake, high to low: 41 bits of milliseconds since
// the configured epoch, 10 bits of machine ID, 12 bits of per-millisecond
// sequence.
const (
	snowflakeTimeBits     = 41
	snowflakeMachineBits  = 10
	snowflakeSequenceBits = 12

	maxMachineID = (1 << snowflakeMachineBits) - 1
	maxSequence  = (1 << snowflakeSequenceBits) - 1

	machineShift = snowflakeSequenceBits
	timeShift    = snowflakeSequenceBits + snowflakeMachineBits
)

// DefaultSnowflakeEpoch is 2024-01-01T00:00:00Z in unix milliseconds.
const DefaultSnowflakeEpoch = 1704067200000

// SnowflakeGenerator issues time-ordered 64-bit IDs rendered as decimal
// strings. A mutex serialises issuance; the sequence field disambiguates
// IDs minted within the same millisecond.
type SnowflakeGenerator struct {
	mu        sync.Mutex
	epoch     int64
	machineID int64
	lastMs    int64
	seq       int64
}

// NewSnowflakeGenerator creates a snowflake strategy. machineID must be in
// [0, 1023]; epoch is the custom epoch in unix milliseconds and must not
// lie in the future.
func NewSnowflakeGenerator(machineID, epoch int64) (*SnowflakeGenerator, error) {
	if machineID < 0 || machineID > maxMachineID {
		return nil, fmt.Errorf("snowflake machine_id must be between 0 and %d, got %d", maxMachineID, machineID)
	}
	if epoch > time.Now().UnixMilli() {
		return nil, fmt.Errorf("snowflake epoch %d lies in the future", epoch)
	}
	return &SnowflakeGenerator{epoch: epoch, machineID: machineID}, nil
}

func (g *SnowflakeGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, err := g.next()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

func (g *SnowflakeGenerator) GenerateBatch(count int) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n, err := g.next()
		if err != nil {
			return nil, err
		}
		ids = append(ids, strconv.FormatInt(n, 10))
	}
	return ids, nil
}

// next must be called with g.mu held.
func (g *SnowflakeGenerator) next() (int64, error) {
	now := time.Now().UnixMilli()
	if now < g.lastMs {
		return 0, fmt.Errorf("clock moved backwards: now=%d last=%d", now, g.lastMs)
	}

	if now == g.lastMs {
		g.seq = (g.seq + 1) & maxSequence
		if g.seq == 0 {
			// Sequence exhausted for this millisecond, spin to the next one.
			for now <= g.lastMs {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		g.seq = 0
	}
	g.lastMs = now

	return (now-g.epoch)<<timeShift | g.machineID<<machineShift | g.seq, nil
}

func (g *SnowflakeGenerator) Validate(id string) (bool, string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return false, "not a decimal 64-bit integer"
	}
	if n < 0 {
		return false, "must be non-negative"
	}

	ts := (n >> timeShift) & ((1 << snowflakeTimeBits) - 1)
	if ts+g.epoch > time.Now().UnixMilli() {
		return false, "timestamp lies in the future"
	}
	return true, ""
}

func (g *SnowflakeGenerator) Parse(id string) (*ParseResult, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("not a decimal 64-bit integer: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("snowflake must be non-negative, got %d", n)
	}

	return &ParseResult{
		TimestampMs: ((n >> timeShift) & ((1 << snowflakeTimeBits) - 1)) + g.epoch,
		MachineID:   (n >> machineShift) & maxMachineID,
		Sequence:    n & maxSequence,
	}, nil
}
