package model

// User is a booker snapshot created together with a booking. Personal
// numbers are not globally unique here; uniqueness is only enforced per
// course through the (course_id, personal_number) index on bookings.
type User struct {
	ID             string  `json:"id"`              // users.id (uuid)
	PersonalNumber int64   `json:"personal_number"` // users.personal_number
	FirstName      string  `json:"first_name"`      // users.first_name
	LastName       string  `json:"last_name"`       // users.last_name
	Address        string  `json:"address"`         // users.address
	CO             *string `json:"co"`              // users.co (nullable)
	Zipcode        int32   `json:"zipcode"`         // users.zipcode
	City           string  `json:"city"`            // users.city
	Kommun         string  `json:"kommun"`          // users.kommun
	Email          string  `json:"email"`           // users.email
	Mobile         string  `json:"mobile"`          // users.mobile
}

// Admin is a back-office account allowed to create catalog entities.
// PasswordHash is a bcrypt digest and must never be serialized.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
}
