package model

import "time"

// Course is a bookable catalog entry. The CityNames and SubcategoryNames
// slices are denormalized from the bridge tables by the course list query;
// they are never stored on the courses table itself. Entries may be nil
// when a course has no links (artifact of the outer join).
//
// Invariants enforced at creation time: MaxSeats >= 0 and EndDate >= StartDate.
type Course struct {
	ID                string    `json:"id"`                 // courses.id (uuid)
	CourseName        string    `json:"course_name"`        // courses.course_name (unique)
	CourseDescription string    `json:"course_description"` // courses.course_description
	StartDate         time.Time `json:"start_date"`         // courses.start_date (UTC)
	EndDate           time.Time `json:"end_date"`           // courses.end_date (UTC)
	CSNEntitled       bool      `json:"csn_entitled"`       // courses.csn_entitled
	MaxSeats          int32     `json:"max_seats"`          // courses.max_seats
	Image             string    `json:"image"`              // courses.image
	Days              string    `json:"days"`               // courses.days
	Hours             string    `json:"hours"`              // courses.hours
	Price             int32     `json:"price"`              // courses.price
	Sessions          int32     `json:"sessions"`           // courses.sessions
	Visible           bool      `json:"visible"`            // courses.visible
	CityNames         []*string `json:"city_names"`         // joined location names
	SubcategoryNames  []*string `json:"subcategory_names"`  // joined category names
}

// CreateCourseRequest is the JSON body accepted by POST /v1/course.
// Dates arrive as RFC3339 strings and are validated before any write.
type CreateCourseRequest struct {
	CourseName        string   `json:"course_name"`
	CourseDescription string   `json:"course_description"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	CSNEntitled       bool     `json:"csn_entitled"`
	MaxSeats          int32    `json:"max_seats"`
	Image             string   `json:"image"`
	Days              string   `json:"days"`
	Hours             string   `json:"hours"`
	Price             int32    `json:"price"`
	Sessions          int32    `json:"sessions"`
	Visible           bool     `json:"visible"`
	CityIDs           []string `json:"city_ids"`
	SubcategoryIDs    []string `json:"subcategory_ids"`
}
