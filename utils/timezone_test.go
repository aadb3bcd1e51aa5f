package utils

import (
	"testing"
	"time"

	"github.com/Merchantry/backoffice/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStoreTimezone(t *testing.T, name string) {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	previous := config.StoreLocation
	config.StoreLocation = loc
	t.Cleanup(func() { config.StoreLocation = previous })
}

func TestToUTCToLocalRoundTrip(t *testing.T) {
	setStoreTimezone(t, "Asia/Kolkata")

	utc := ToUTC("2025-03-10 15:00:00")
	require.NotNil(t, utc)
	assert.Equal(t, time.UTC, utc.Location())

	back := ToLocal(utc.Format("2006-01-02 15:04:05"))
	require.NotNil(t, back)
	assert.Equal(t, "2025-03-10 15:00:00", back.Format("2006-01-02 15:04:05"))
	assert.True(t, utc.Equal(*back), "round trip preserves the instant")
}

func TestToUTCAppliesStoreOffset(t *testing.T) {
	setStoreTimezone(t, "Asia/Kolkata")

	utc := ToUTC("2025-03-10 15:00:00")
	require.NotNil(t, utc)
	// IST is UTC+05:30.
	assert.Equal(t, "2025-03-10 09:30:00", utc.Format("2006-01-02 15:04:05"))
}

func TestParseReturnsNilOnGarbage(t *testing.T) {
	setStoreTimezone(t, "Asia/Kolkata")

	assert.Nil(t, ToUTC("not a date"))
	assert.Nil(t, ToLocal("31-31-31"))
	assert.Nil(t, ToUTC(""))
}

func TestParseAcceptsCommonLayouts(t *testing.T) {
	setStoreTimezone(t, "Asia/Kolkata")

	for _, input := range []string{
		"2025-03-10T15:04:05Z",
		"2025-03-10T15:04:05",
		"2025-03-10T15:04",
		"2025-03-10 15:04:05",
		"2025-03-10",
	} {
		assert.NotNil(t, ToUTC(input), "input %q", input)
	}
}

func TestDayRangeToUTCSnapsBoundaries(t *testing.T) {
	setStoreTimezone(t, "Asia/Kolkata")

	from, to := DayRangeToUTC("2025-03-10 15:00:00", "2025-03-12 08:00:00")
	require.NotNil(t, from)
	require.NotNil(t, to)

	loc := config.StoreLocation
	assert.Equal(t, "2025-03-10 00:00:00", from.In(loc).Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-03-12 23:59:59", to.In(loc).Format("2006-01-02 15:04:05"))
	assert.Equal(t, time.UTC, from.Location())
	assert.Equal(t, time.UTC, to.Location())
}

func TestDayRangeToUTCHandlesOpenEnds(t *testing.T) {
	setStoreTimezone(t, "Asia/Kolkata")

	from, to := DayRangeToUTC("", "2025-03-12")
	assert.Nil(t, from)
	assert.NotNil(t, to)

	from, to = DayRangeToUTC("2025-03-10", "")
	assert.NotNil(t, from)
	assert.Nil(t, to)

	from, to = DayRangeToUTC("garbage", "also garbage")
	assert.Nil(t, from)
	assert.Nil(t, to)
}
