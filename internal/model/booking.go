package model

import "time"

// Booking is one confirmed seat reservation for one person in one course.
// Rows are immutable after creation; Paid is frozen at false because
// payment handling lives outside this service.
type Booking struct {
	ID             string    `json:"id"`              // course_bookings.id (uuid)
	CourseID       string    `json:"course_id"`       // course_bookings.course_id
	UserID         string    `json:"user_id"`         // course_bookings.user_id
	PersonalNumber int64     `json:"personal_number"` // snapshot of the booker's personal number
	BookedAt       time.Time `json:"booked_at"`       // UTC creation time
	Paid           bool      `json:"paid"`            // always false at creation
}

// CourseBookingInfo is the derived read used to evaluate the booking rules.
// PersonalNumbers may contain nil entries produced by the outer join when a
// course has no bookings yet; the rules filter those out before comparing.
type CourseBookingInfo struct {
	CourseID        string   `json:"course_id"`
	MaxSeats        int32    `json:"max_seats"`
	BookingCount    int64    `json:"booking_count"`
	PersonalNumbers []*int64 `json:"personal_numbers"`
}

// CreateBookingRequest is the body for POST /v1/booking. All booker fields
// are snapshotted into a new users row when the booking succeeds.
type CreateBookingRequest struct {
	PersonalNumber int64   `json:"personal_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Address        string  `json:"address"`
	CO             *string `json:"co"`
	Zipcode        int32   `json:"zipcode"`
	City           string  `json:"city"`
	Kommun         string  `json:"kommun"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	CourseID       string  `json:"course_id"`
}
