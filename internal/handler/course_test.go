package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Handlers are constructed with nil repositories in these tests: every case
// must be rejected by validation before any repository call.

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestGetCourseByIDRejectsBadUUID(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodGet, "/", "")
	c.SetPath("/v1/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, h.GetCourseByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCourseRejectsMalformedBody(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course", `{"course_name": 12}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCourseRequiresName(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course", `{"course_name":"  "}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "course_name")
}

func TestCreateCourseRejectsNegativeSeats(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course",
		`{"course_name":"Woodworking","max_seats":-1}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "max_seats")
}

func TestCreateCourseRejectsBadStartDate(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course",
		`{"course_name":"Woodworking","start_date":"2026/01/01","end_date":"2026-02-01T00:00:00Z"}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_date")
}

func TestCreateCourseRejectsBadEndDate(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course",
		`{"course_name":"Woodworking","start_date":"2026-01-01T00:00:00Z","end_date":"soon"}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "end_date")
}

func TestCreateCourseRejectsEndBeforeStart(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course",
		`{"course_name":"Woodworking","start_date":"2026-02-01T00:00:00Z","end_date":"2026-01-01T00:00:00Z"}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCourseRejectsBadLinkedID(t *testing.T) {
	h := NewCourseHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/course",
		`{"course_name":"Woodworking","start_date":"2026-01-01T00:00:00Z","end_date":"2026-02-01T00:00:00Z","city_ids":["nope"]}`)

	assert.NoError(t, h.CreateCourse(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
