package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-booking/internal/model"
	"github.com/iliyamo/course-booking/internal/repository"
)

// CourseHandler serves the course read endpoints and the course-addition
// flow. Course creation writes the course row and all bridge rows in one
// transaction so a partially linked course can never become visible.
type CourseHandler struct {
	Courses *repository.CourseRepo
}

func NewCourseHandler(courses *repository.CourseRepo) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

// ListCourses handles GET /v1/courses. Every course is returned with its
// joined city and subcategory names.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.Courses.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no courses found"})
	}
	return c.JSON(http.StatusOK, courses)
}

// GetCourseByID handles GET /v1/courses/:id.
func (h *CourseHandler) GetCourseByID(c echo.Context) error {
	id := c.Param("id")
	if !validUUID(id) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse id as a uuid"})
	}
	course, err := h.Courses.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no course with given id found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, course)
}

// CreateCourse handles POST /v1/course. Validation order: body shape, name
// presence, seat capacity, date parsing, date ordering, then the
// duplicate-name fast path. Only after every check passes does the
// transaction open; the course insert and one bridge row per linked city
// and subcategory commit or roll back together.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req model.CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CourseName = strings.TrimSpace(req.CourseName)
	if req.CourseName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "course_name is required"})
	}
	if req.MaxSeats < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_seats must not be negative"})
	}
	startDate, err := parseRFC3339(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse start_date"})
	}
	endDate, err := parseRFC3339(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse end_date"})
	}
	if endDate.Before(startDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not be before start_date"})
	}
	for _, id := range append(append([]string{}, req.CityIDs...), req.SubcategoryIDs...) {
		if !validUUID(id) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse linked id as a uuid"})
		}
	}

	ctx := c.Request().Context()

	// Fast-path duplicate check; the unique index on course_name is the
	// authoritative guard.
	if _, err := h.Courses.GetByName(ctx, req.CourseName); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "course with this name already exists"})
	} else if !errors.Is(err, repository.ErrCourseNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	course := &model.Course{
		ID:                uuid.NewString(),
		CourseName:        req.CourseName,
		CourseDescription: req.CourseDescription,
		StartDate:         startDate,
		EndDate:           endDate,
		CSNEntitled:       req.CSNEntitled,
		MaxSeats:          req.MaxSeats,
		Image:             req.Image,
		Days:              req.Days,
		Hours:             req.Hours,
		Price:             req.Price,
		Sessions:          req.Sessions,
		Visible:           req.Visible,
		CityNames:         []*string{},
		SubcategoryNames:  []*string{},
	}

	tx, err := h.Courses.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := h.Courses.CreateTx(ctx, tx, course); err != nil {
		if repository.IsDuplicateKey(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "course with this name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create course"})
	}

	var linked int64
	for _, cityID := range req.CityIDs {
		n, err := h.Courses.AddLocationLinkTx(ctx, tx, course.ID, cityID)
		if err != nil {
			if repository.IsForeignKeyViolation(err) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "linked city does not exist"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to link city"})
		}
		linked += n
	}
	for _, subID := range req.SubcategoryIDs {
		n, err := h.Courses.AddCategoryLinkTx(ctx, tx, course.ID, subID)
		if err != nil {
			if repository.IsForeignKeyViolation(err) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "linked subcategory does not exist"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to link subcategory"})
		}
		linked += n
	}
	// A non-empty link set that affected zero rows means the bridge writes
	// silently failed; roll back rather than commit a half-linked course.
	if len(req.CityIDs)+len(req.SubcategoryIDs) > 0 && linked == 0 {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to link course"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	return c.JSON(http.StatusOK, course)
}
