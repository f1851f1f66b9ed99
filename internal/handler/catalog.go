package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-booking/internal/catalog"
	"github.com/iliyamo/course-booking/internal/model"
	"github.com/iliyamo/course-booking/internal/repository"
)

// CatalogHandler composes the aggregate read: all courses plus both
// assembled hierarchies in one response.
type CatalogHandler struct {
	Courses    *repository.CourseRepo
	Categories *repository.CategoryRepo
	Locations  *repository.LocationRepo
}

func NewCatalogHandler(courses *repository.CourseRepo, categories *repository.CategoryRepo, locations *repository.LocationRepo) *CatalogHandler {
	return &CatalogHandler{Courses: courses, Categories: categories, Locations: locations}
}

// coursesCategoriesDistricts is the aggregate response body. Both tree
// fields are always present, possibly empty.
type coursesCategoriesDistricts struct {
	Courses    []*model.Course        `json:"courses"`
	Categories []model.NestedCategory `json:"categories"`
	Districts  []model.District       `json:"districts"`
}

// ListCoursesWithCatalog handles GET /v1/coursesWithCategoriesAndLocations.
// The course list is load-bearing: its failure fails the request. The two
// hierarchy sub-trees degrade to empty lists on store failure so the
// response shape stays stable. Responds 202, the documented contract of
// this endpoint.
func (h *CatalogHandler) ListCoursesWithCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	courses, err := h.Courses.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no courses found"})
	}

	categories := []model.NestedCategory{}
	if rows, err := h.Categories.CategoriesWithSubcategories(ctx); err == nil {
		categories = nestedFromNodes(catalog.AssembleAll(rows))
	}

	districts := []model.District{}
	if rows, err := h.Locations.DistrictsWithCities(ctx); err == nil {
		districts = districtsFromNodes(catalog.AssembleAll(rows))
	}

	return c.JSON(http.StatusAccepted, coursesCategoriesDistricts{
		Courses:    courses,
		Categories: categories,
		Districts:  districts,
	})
}
