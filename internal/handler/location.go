package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-booking/internal/catalog"
	"github.com/iliyamo/course-booking/internal/model"
	"github.com/iliyamo/course-booking/internal/repository"
)

// LocationHandler serves the geographic hierarchy: district/city reads and
// the two create endpoints. City creation resolves its parent with a
// root-only lookup, so the hierarchy can never grow a third level.
type LocationHandler struct {
	Locations *repository.LocationRepo
}

func NewLocationHandler(locations *repository.LocationRepo) *LocationHandler {
	return &LocationHandler{Locations: locations}
}

// districtsFromNodes renders assembled tree nodes into the district/city
// JSON shape.
func districtsFromNodes(nodes []catalog.Node) []model.District {
	out := make([]model.District, 0, len(nodes))
	for _, n := range nodes {
		d := model.District{
			DistrictID:   n.ID,
			DistrictName: n.Name,
			Cities:       make([]model.City, 0, len(n.Children)),
		}
		for _, ch := range n.Children {
			d.Cities = append(d.Cities, model.City{CityID: ch.ID, CityName: ch.Name})
		}
		out = append(out, d)
	}
	return out
}

// ListLocations handles GET /v1/locations: the full district -> cities tree.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	rows, err := h.Locations.DistrictsWithCities(c.Request().Context())
	if err != nil {
		// Same degrade-to-empty contract the aggregate endpoint uses.
		return c.JSON(http.StatusOK, []model.District{})
	}
	return c.JSON(http.StatusOK, districtsFromNodes(catalog.AssembleAll(rows)))
}

// ListDistricts handles GET /v1/districts: flat district rows.
func (h *LocationHandler) ListDistricts(c echo.Context) error {
	districts, err := h.Locations.ListDistricts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "error fetching districts"})
	}
	return c.JSON(http.StatusOK, districts)
}

// ListCitiesByDistrict handles GET /v1/cities/:id.
func (h *LocationHandler) ListCitiesByDistrict(c echo.Context) error {
	id := c.Param("id")
	if !validUUID(id) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse parent_id as a uuid"})
	}
	cities, err := h.Locations.ListCitiesByDistrict(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no cities with given parent_id found"})
	}
	return c.JSON(http.StatusOK, cities)
}

// CreateDistrict handles POST /v1/district.
func (h *LocationHandler) CreateDistrict(c echo.Context) error {
	var req model.CreateDistrictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx := c.Request().Context()
	if _, err := h.Locations.GetDistrictByName(ctx, req.Name); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "district with this name already exists"})
	} else if !errors.Is(err, repository.ErrLocationNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	district := &model.Location{
		ID:   uuid.NewString(),
		Name: req.Name,
		Code: req.Code,
	}
	if err := h.Locations.Create(ctx, district); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create district"})
	}
	return c.JSON(http.StatusOK, district)
}

// CreateCity handles POST /v1/city. The parent must be an existing district;
// looking it up with the root-only query is what blocks city-under-city.
func (h *LocationHandler) CreateCity(c echo.Context) error {
	var req model.CreateCityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !validUUID(req.DistrictID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse district_id as a uuid"})
	}

	ctx := c.Request().Context()
	if _, err := h.Locations.GetDistrictByID(ctx, req.DistrictID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "parent district does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.Locations.GetCityByName(ctx, req.DistrictID, req.Name); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city with this name already exists in this district"})
	} else if !errors.Is(err, repository.ErrLocationNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	city := &model.Location{
		ID:       uuid.NewString(),
		Name:     req.Name,
		ParentID: &req.DistrictID,
		Code:     req.Code,
	}
	if err := h.Locations.Create(ctx, city); err != nil {
		if repository.IsDuplicateKey(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "city with this name already exists in this district"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create city"})
	}
	return c.JSON(http.StatusOK, city)
}
