// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-booking/internal/handler"
	"github.com/iliyamo/course-booking/internal/middleware"
)

// RegisterPublic registers the unauthenticated endpoints under /v1: the
// catalog reads, the aggregate read, admin login and the booking endpoint.
// cacheMW fronts the GET routes (pass-through when Redis is absent);
// rateMW guards the booking endpoint against scripted seat grabs.
func RegisterPublic(
	e *echo.Echo,
	courses *handler.CourseHandler,
	categories *handler.CategoryHandler,
	locations *handler.LocationHandler,
	catalog *handler.CatalogHandler,
	bookings *handler.BookingHandler,
	auth *handler.AuthHandler,
	cacheMW echo.MiddlewareFunc,
	rateMW echo.MiddlewareFunc,
) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1")

	reads := g.Group("", cacheMW)
	reads.GET("/courses", courses.ListCourses)
	reads.GET("/courses/:id", courses.GetCourseByID)
	reads.GET("/coursesWithCategoriesAndLocations", catalog.ListCoursesWithCatalog)
	reads.GET("/categories", categories.ListCategories)
	reads.GET("/subcategories/:id", categories.ListSubcategories)
	reads.GET("/locations", locations.ListLocations)
	reads.GET("/districts", locations.ListDistricts)
	reads.GET("/cities/:id", locations.ListCitiesByDistrict)

	g.POST("/auth/login", auth.Login)
	g.POST("/booking", bookings.CreateBooking, rateMW)
}

// RegisterAdmin registers the catalog write endpoints under /v1. All routes
// require a valid JWT carrying the ADMIN role.
func RegisterAdmin(
	e *echo.Echo,
	courses *handler.CourseHandler,
	categories *handler.CategoryHandler,
	locations *handler.LocationHandler,
	jwtSecret string,
) {
	g := e.Group("/v1", middleware.AdminAuth(jwtSecret))

	g.POST("/course", courses.CreateCourse)
	g.POST("/district", locations.CreateDistrict)
	g.POST("/city", locations.CreateCity)
	g.POST("/category", categories.CreateCategory)
	g.POST("/subcategory", categories.CreateSubcategory)
}
