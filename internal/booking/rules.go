// Package booking holds the seat-reservation decision rules. They are kept
// pure so the capacity and duplicate checks can be tested without a
// database; the handler applies them between the locking read and the
// transactional write.
package booking

import (
	"errors"

	"github.com/iliyamo/course-booking/internal/model"
)

// ErrCourseFull rejects a booking when every seat is taken. The comparison
// is exact: a course with max_seats = N admits exactly N bookings.
var ErrCourseFull = errors.New("the course is fully booked")

// ErrAlreadyBooked rejects a second booking by the same personal number for
// the same course.
var ErrAlreadyBooked = errors.New("this course is already booked by this person")

// Decide evaluates the booking rules against the capacity view. A nil
// return means the booking may proceed to the write phase. Nil entries in
// the personal-number list come from the outer join on courses without
// bookings and are ignored.
func Decide(info *model.CourseBookingInfo, personalNumber int64) error {
	if info.BookingCount >= int64(info.MaxSeats) {
		return ErrCourseFull
	}
	for _, pn := range info.PersonalNumbers {
		if pn != nil && *pn == personalNumber {
			return ErrAlreadyBooked
		}
	}
	return nil
}
