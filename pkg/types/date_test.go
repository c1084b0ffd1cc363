package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())
}

func TestNewDateStringFromStringInvalid(t *testing.T) {
	cases := []string{"", "2026-3-15", "15-03-2026", "2026-02-30", "2026-03-15T00:00:00Z", "not-a-date"}
	for _, raw := range cases {
		_, err := NewDateStringFromString(raw)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", raw)
	}
}

func TestNewDateStringFromTime(t *testing.T) {
	ts := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	d := NewDateStringFromTime(ts)
	assert.Equal(t, DateString("2026-03-15"), d)
}

func TestDateStringBeforeAfter(t *testing.T) {
	a := DateString("2026-03-15")
	b := DateString("2026-03-16")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestDateStringNext(t *testing.T) {
	assert.Equal(t, DateString("2026-03-01"), DateString("2026-02-28").Next())
	assert.Equal(t, DateString("2028-02-29"), DateString("2028-02-28").Next())
	assert.Equal(t, DateString("2027-01-01"), DateString("2026-12-31").Next())
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween("2026-03-30", "2026-04-02")
	assert.Equal(t, []DateString{"2026-03-30", "2026-03-31", "2026-04-01", "2026-04-02"}, dates)
}

func TestDatesBetweenSingleDay(t *testing.T) {
	dates := DatesBetween("2026-03-15", "2026-03-15")
	assert.Equal(t, []DateString{"2026-03-15"}, dates)
}

func TestDatesBetweenReversedRange(t *testing.T) {
	assert.Empty(t, DatesBetween("2026-03-16", "2026-03-15"))
}

func TestDateStringScan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2026-03-15"), d)

	require.NoError(t, d.Scan("2026-04-01"))
	assert.Equal(t, DateString("2026-04-01"), d)

	require.NoError(t, d.Scan([]byte("2026-05-01")))
	assert.Equal(t, DateString("2026-05-01"), d)

	assert.Error(t, d.Scan(42))
}

func TestDateStringValue(t *testing.T) {
	v, err := DateString("2026-03-15").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", v)
}
