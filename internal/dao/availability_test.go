package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return t0.AddDate(0, 0, n)
}

func bookingRequests() []*Request {
	return []*Request{
		{ID: "a", Kind: KindBorrow, Status: StatusApproved, DeviceID: "d1", StartDate: day(5), EndDate: day(8)},
		{ID: "b", Kind: KindRenewal, Status: StatusActive, DeviceID: "d1", StartDate: day(1), EndDate: day(3)},
		{ID: "c", Kind: KindBorrow, Status: StatusPending, DeviceID: "d1", StartDate: day(3), EndDate: day(5)},
		{ID: "d", Kind: KindBorrow, Status: StatusRejected, DeviceID: "d1", StartDate: day(8), EndDate: day(9)},
		{ID: "e", Kind: KindReturn, Status: StatusApproved, DeviceID: "d1", StartDate: day(9), EndDate: day(10)},
		{ID: "f", Kind: KindBorrow, Status: StatusApproved, DeviceID: "d1", StartDate: day(9), EndDate: day(12)},
	}
}

func TestAvailabilityBookings(t *testing.T) {
	a := NewAvailability(bookingRequests())

	bb := a.Bookings("d1")
	ids := make([]string, 0, len(bb))
	for _, b := range bb {
		ids = append(ids, b.RequestID)
	}
	assert.Equal(t, []string{"b", "a", "f"}, ids)
	assert.Empty(t, a.Bookings("d2"))
}

func TestAvailabilityIsAvailable(t *testing.T) {
	a := NewAvailability(bookingRequests())

	uu := map[string]struct {
		from, to time.Time
		e        bool
	}{
		"gap":           {from: day(3), to: day(5), e: true},
		"touching-end":  {from: day(8), to: day(9), e: true},
		"overlap-start": {from: day(0), to: day(2), e: false},
		"inside":        {from: day(6), to: day(7), e: false},
		"spanning":      {from: day(2), to: day(10), e: false},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, a.IsAvailable("d1", u.from, u.to))
		})
	}
	assert.True(t, a.IsAvailable("d2", day(0), day(30)))
}

func TestAvailabilityNextAvailable(t *testing.T) {
	a := NewAvailability(bookingRequests())
	d := 24 * time.Hour

	assert.Equal(t, day(3), a.NextAvailable("d1", day(0), 2*d))
	assert.Equal(t, day(12), a.NextAvailable("d1", day(0), 3*d))
	assert.Equal(t, day(8), a.NextAvailable("d1", day(6), d))
	assert.Equal(t, day(20), a.NextAvailable("d1", day(20), d))
	assert.Equal(t, day(0), a.NextAvailable("d2", day(0), 30*d))
}
