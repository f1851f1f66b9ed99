package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iliyamo/course-booking/internal/model"
)

// BookingRepo provides the booking-info read paths and the transactional
// inserts used by the booking protocol. The locking variant serializes
// concurrent bookings for the same course; the unique index on
// (course_id, personal_number) backstops the duplicate check.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the provided DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying pool so the handler can open the booking
// transaction.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// CourseBookingInfo loads the derived capacity view without locking. It is
// suitable for display; the booking protocol uses CourseBookingInfoTx.
// Returns ErrCourseNotFound when the course id matches no row.
func (r *BookingRepo) CourseBookingInfo(ctx context.Context, courseID string) (*model.CourseBookingInfo, error) {
	const q = `SELECT c.id, c.max_seats, COUNT(b.id), JSON_ARRAYAGG(b.personal_number)
	           FROM courses c
	           LEFT JOIN course_bookings b ON b.course_id = c.id
	           WHERE c.id = ?
	           GROUP BY c.id, c.max_seats`
	var info model.CourseBookingInfo
	var numbers []byte
	err := r.db.QueryRowContext(ctx, q, courseID).Scan(
		&info.CourseID, &info.MaxSeats, &info.BookingCount, &numbers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(numbers, &info.PersonalNumbers); err != nil {
		return nil, err
	}
	return &info, nil
}

// CourseBookingInfoTx loads the same view inside a transaction after taking
// a row lock on the course. The lock is the serialization point of the
// booking protocol: two concurrent bookings for one course queue here, so
// the second observes the first one's committed count. FOR UPDATE cannot be
// combined with the aggregate, hence the separate statements.
func (r *BookingRepo) CourseBookingInfoTx(ctx context.Context, tx *sql.Tx, courseID string) (*model.CourseBookingInfo, error) {
	var info model.CourseBookingInfo
	err := tx.QueryRowContext(ctx,
		`SELECT id, max_seats FROM courses WHERE id = ? FOR UPDATE`, courseID,
	).Scan(&info.CourseID, &info.MaxSeats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	rows, err := tx.QueryContext(ctx,
		`SELECT personal_number FROM course_bookings WHERE course_id = ?`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	info.PersonalNumbers = make([]*int64, 0)
	for rows.Next() {
		var pn int64
		if err := rows.Scan(&pn); err != nil {
			return nil, err
		}
		info.PersonalNumbers = append(info.PersonalNumbers, &pn)
		info.BookingCount++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &info, nil
}

// InsertUserTx inserts the booker snapshot within the booking transaction.
// Zero affected rows surface as ErrNoRowsAffected so the caller rolls back.
func (r *BookingRepo) InsertUserTx(ctx context.Context, tx *sql.Tx, u *model.User) error {
	const q = `INSERT INTO users
	             (id, personal_number, first_name, last_name, address, co,
	              zipcode, city, kommun, email, mobile)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		u.ID, u.PersonalNumber, u.FirstName, u.LastName, u.Address, u.CO,
		u.Zipcode, u.City, u.Kommun, u.Email, u.Mobile)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// InsertBookingTx inserts the booking row within the booking transaction.
// A duplicate (course_id, personal_number) pair violates the unique index
// and propagates as a 1062 error for the handler to map to a conflict.
func (r *BookingRepo) InsertBookingTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO course_bookings
	             (id, course_id, user_id, personal_number, booked_at, paid)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.ID, b.CourseID, b.UserID, b.PersonalNumber, b.BookedAt.UTC(), b.Paid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
