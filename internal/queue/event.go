// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a seat booking is successfully
// committed. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID      string `json:"booking_id"`
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
	UserID         string `json:"user_id"`
	PersonalNumber int64  `json:"personal_number"`
	Email          string `json:"email"`
	SeatsTaken     int64  `json:"seats_taken"`
	MaxSeats       int32  `json:"max_seats"`
	BookedAt       string `json:"booked_at"`
}
