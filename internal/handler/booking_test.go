package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRejectsMalformedBody(t *testing.T) {
	h := NewBookingHandler(nil, nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/booking", `{"personal_number":"abc"}`)

	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingRequiresPersonalNumber(t *testing.T) {
	h := NewBookingHandler(nil, nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/booking",
		`{"first_name":"Asta","last_name":"Berg","email":"asta@example.com","course_id":"b4b43a85-5ad7-47a7-9a3c-0f7d86c4ad68"}`)

	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "personal_number")
}

func TestCreateBookingRequiresName(t *testing.T) {
	h := NewBookingHandler(nil, nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/booking",
		`{"personal_number":198001011234,"email":"asta@example.com","course_id":"b4b43a85-5ad7-47a7-9a3c-0f7d86c4ad68"}`)

	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingRejectsBadCourseID(t *testing.T) {
	h := NewBookingHandler(nil, nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/booking",
		`{"personal_number":198001011234,"first_name":"Asta","last_name":"Berg","email":"asta@example.com","course_id":"42"}`)

	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "course_id")
}
