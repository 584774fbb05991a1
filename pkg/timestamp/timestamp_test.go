package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKnownTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-10-27T10:00:00Z", Format(at))
}

func TestFormatConvertsToUTC(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2023, 10, 27, 12, 30, 0, 0, zone)
	assert.Equal(t, "2023-10-27T10:30:00Z", Format(at))
}

func TestNowUTCLength(t *testing.T) {
	t.Parallel()

	ts := NowUTC()
	assert.Len(t, ts, 20)
}

func TestNowUTCShape(t *testing.T) {
	t.Parallel()

	ts := NowUTC()
	require.Len(t, ts, 20)

	assert.Equal(t, byte('-'), ts[4], "year separator")
	assert.Equal(t, byte('-'), ts[7], "month separator")
	assert.Equal(t, byte('T'), ts[10], "date/time separator")
	assert.Equal(t, byte(':'), ts[13], "hour separator")
	assert.Equal(t, byte(':'), ts[16], "minute separator")
	assert.Equal(t, byte('Z'), ts[19], "UTC marker")
}

func TestNowUTCComponentsAreDigits(t *testing.T) {
	t.Parallel()

	ts := NowUTC()
	require.Len(t, ts, 20)

	for _, span := range [][2]int{{0, 4}, {5, 7}, {8, 10}, {11, 13}, {14, 16}, {17, 19}} {
		for i := span[0]; i < span[1]; i++ {
			assert.True(t, ts[i] >= '0' && ts[i] <= '9', "position %d of %q must be a digit", i, ts)
		}
	}
}

func TestNowUTCParsesBack(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC().Truncate(time.Second)
	ts := NowUTC()
	after := time.Now().UTC()

	parsed, err := time.Parse(Layout, ts)
	require.NoError(t, err)
	assert.False(t, parsed.Before(before))
	assert.False(t, parsed.After(after))
}
