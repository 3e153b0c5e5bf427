package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDuration(t *testing.T) {
	uu := map[string]struct {
		d time.Duration
		e string
	}{
		"sub-second": {d: 10 * time.Millisecond, e: "0s"},
		"seconds":    {d: 42 * time.Second, e: "42s"},
		"minutes":    {d: 3*time.Minute + 10*time.Second, e: "3m"},
		"hours":      {d: 5*time.Hour + time.Minute, e: "5h"},
		"days":       {d: 49 * time.Hour, e: "2d"},
		"years":      {d: 800 * 24 * time.Hour, e: "2y"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, HumanDuration(u.d))
		})
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, UnknownValue, ToAge(time.Time{}))
	assert.Equal(t, MissingValue, ToDate(time.Time{}))
	assert.Equal(t, "2025-03-10", ToDate(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, MissingValue, Missing(""))
	assert.Equal(t, NAValue, NA(""))
	assert.Equal(t, "x", NA("x"))
	assert.Equal(t, "Yes", BoolToYesNo(true))

	p := 12.5
	assert.Equal(t, "12.50", FormatPrice(&p))
	assert.Equal(t, NAValue, FormatPrice(nil))

	assert.Equal(t, "héllo", Truncate("héllo", 5))
	assert.Equal(t, "hé...", Truncate("héllo world", 5))
	assert.Equal(t, "ab", Truncate("abcdef", 2))

	assert.Equal(t, "6ba7b810", ShortID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.Equal(t, "r1", ShortID("r1"))
}
