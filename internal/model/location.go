package model

// Location is a row of the two-level geographic hierarchy. A location
// without a parent is a district; one with a parent is a city. The schema
// supports exactly these two levels: a city's parent must itself be a
// district (parent of parent is always NULL), which the create handlers
// enforce by resolving parents with root-only lookups.
type Location struct {
	ID       string  `json:"id"`        // locations.id (uuid)
	Name     string  `json:"name"`      // locations.name
	ParentID *string `json:"parent_id"` // locations.parent_id, NULL for districts
	Code     int32   `json:"code"`      // locations.code
}

// CreateDistrictRequest is the body for POST /v1/district.
type CreateDistrictRequest struct {
	Name string `json:"name"`
	Code int32  `json:"code"`
}

// CreateCityRequest is the body for POST /v1/city. DistrictID must name an
// existing district-level location.
type CreateCityRequest struct {
	Name       string `json:"name"`
	DistrictID string `json:"district_id"`
	Code       int32  `json:"code"`
}

// District is the assembled district -> cities tree node returned by the
// nested location endpoints.
type District struct {
	DistrictID   string `json:"district_id"`
	DistrictName string `json:"district_name"`
	Cities       []City `json:"cities"`
}

// City is one child entry of an assembled District.
type City struct {
	CityID   string `json:"city_id"`
	CityName string `json:"city_name"`
}
