package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/course-booking/internal/model"
)

func intp(n int64) *int64 { return &n }

func info(maxSeats int32, numbers ...*int64) *model.CourseBookingInfo {
	return &model.CourseBookingInfo{
		CourseID:        "c1",
		MaxSeats:        maxSeats,
		BookingCount:    int64(len(numbers)),
		PersonalNumbers: numbers,
	}
}

func TestDecideAllowsWhileSeatsRemain(t *testing.T) {
	assert.NoError(t, Decide(info(2, intp(111)), 222))
}

func TestDecideRejectsFullCourse(t *testing.T) {
	// Exactly at capacity: N bookings for max_seats = N is full.
	err := Decide(info(2, intp(111), intp(222)), 333)
	assert.ErrorIs(t, err, ErrCourseFull)
}

func TestDecideRejectsOverCapacity(t *testing.T) {
	err := Decide(info(1, intp(111), intp(222)), 333)
	assert.ErrorIs(t, err, ErrCourseFull)
}

func TestDecideZeroSeatCourseIsAlwaysFull(t *testing.T) {
	err := Decide(info(0), 111)
	assert.ErrorIs(t, err, ErrCourseFull)
}

func TestDecideRejectsDuplicatePersonalNumber(t *testing.T) {
	err := Decide(info(10, intp(111), intp(222)), 222)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestDecideIgnoresNullPersonalNumbers(t *testing.T) {
	// A course without bookings aggregates to [null]; the null must not
	// match anything and must not block the first booking.
	err := Decide(&model.CourseBookingInfo{
		CourseID:        "c1",
		MaxSeats:        5,
		BookingCount:    0,
		PersonalNumbers: []*int64{nil},
	}, 111)
	assert.NoError(t, err)
}

func TestDecideCapacityBeforeDuplicate(t *testing.T) {
	// Full course wins even when the caller already booked: matches the
	// original check order.
	err := Decide(info(1, intp(111)), 111)
	assert.ErrorIs(t, err, ErrCourseFull)
}
