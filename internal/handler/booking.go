package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-booking/internal/booking"
	"github.com/iliyamo/course-booking/internal/model"
	"github.com/iliyamo/course-booking/internal/queue"
	"github.com/iliyamo/course-booking/internal/repository"
	queue_publisher "github.com/iliyamo/course-booking/internal/service"
)

// BookingHandler runs the seat-booking protocol. The whole flow happens in
// one transaction: a FOR UPDATE read of the course row serializes concurrent
// bookings per course, the pure rules decide, and the booker snapshot plus
// booking row commit together. The unique index on (course_id,
// personal_number) backstops the duplicate rule at the storage level.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Courses  *repository.CourseRepo
}

func NewBookingHandler(bookings *repository.BookingRepo, courses *repository.CourseRepo) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Courses: courses}
}

// CreateBooking handles POST /v1/booking.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PersonalNumber <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "personal_number is required"})
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name and last_name are required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}
	if !validUUID(req.CourseID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse course_id as a uuid"})
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Locking read: holds the course row until commit or rollback, so a
	// concurrent booking for the same course waits here and then sees this
	// booking's committed count.
	info, err := h.Bookings.CourseBookingInfoTx(ctx, tx, req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "course not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := booking.Decide(info, req.PersonalNumber); err != nil {
		switch {
		case errors.Is(err, booking.ErrCourseFull):
			return c.JSON(http.StatusConflict, echo.Map{"error": "the course is fully booked"})
		case errors.Is(err, booking.ErrAlreadyBooked):
			return c.JSON(http.StatusConflict, echo.Map{"error": "you have already booked this course"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking rejected"})
	}

	user := &model.User{
		ID:             uuid.NewString(),
		PersonalNumber: req.PersonalNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Address:        req.Address,
		CO:             req.CO,
		Zipcode:        req.Zipcode,
		City:           req.City,
		Kommun:         req.Kommun,
		Email:          req.Email,
		Mobile:         req.Mobile,
	}
	if err := h.Bookings.InsertUserTx(ctx, tx, user); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to save booker"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	b := &model.Booking{
		ID:             uuid.NewString(),
		CourseID:       req.CourseID,
		UserID:         user.ID,
		PersonalNumber: req.PersonalNumber,
		BookedAt:       time.Now().UTC(),
		Paid:           false,
	}
	if err := h.Bookings.InsertBookingTx(ctx, tx, b); err != nil {
		if repository.IsDuplicateKey(err) {
			// The index caught a duplicate the pre-read missed.
			return c.JSON(http.StatusConflict, echo.Map{"error": "you have already booked this course"})
		}
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to save booking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Best effort: the booking is committed, a lost event never fails it.
	h.publishCreated(c, b, user, info)

	return c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) publishCreated(c echo.Context, b *model.Booking, u *model.User, info *model.CourseBookingInfo) {
	ev := queue.BookingCreatedEvent{
		BookingID:      b.ID,
		CourseID:       b.CourseID,
		UserID:         u.ID,
		PersonalNumber: b.PersonalNumber,
		Email:          u.Email,
		SeatsTaken:     info.BookingCount + 1,
		MaxSeats:       info.MaxSeats,
		BookedAt:       b.BookedAt.Format(time.RFC3339),
	}
	if course, err := h.Courses.GetByID(c.Request().Context(), b.CourseID); err == nil {
		ev.CourseName = course.CourseName
	}
	if err := queue_publisher.PublishBookingCreated(c.Request().Context(), ev); err != nil {
		c.Logger().Warnf("booking %s: publish event failed: %v", b.ID, err)
	}
}
