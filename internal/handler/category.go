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

// CategoryHandler mirrors LocationHandler for the subject hierarchy.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(categories *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

// nestedFromNodes renders assembled tree nodes into the category JSON shape.
func nestedFromNodes(nodes []catalog.Node) []model.NestedCategory {
	out := make([]model.NestedCategory, 0, len(nodes))
	for _, n := range nodes {
		nc := model.NestedCategory{
			CategoryID:    n.ID,
			CategoryName:  n.Name,
			Subcategories: make([]model.Subcategory, 0, len(n.Children)),
		}
		for _, ch := range n.Children {
			nc.Subcategories = append(nc.Subcategories, model.Subcategory{
				SubcategoryID:   ch.ID,
				SubcategoryName: ch.Name,
			})
		}
		out = append(out, nc)
	}
	return out
}

// ListCategories handles GET /v1/categories: the full category tree. A store
// failure degrades to an empty list, matching the aggregate endpoint.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	rows, err := h.Categories.CategoriesWithSubcategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, []model.NestedCategory{})
	}
	return c.JSON(http.StatusOK, nestedFromNodes(catalog.AssembleAll(rows)))
}

// ListSubcategories handles GET /v1/subcategories/:id.
func (h *CategoryHandler) ListSubcategories(c echo.Context) error {
	id := c.Param("id")
	if !validUUID(id) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse category_id as a uuid"})
	}
	subs, err := h.Categories.ListSubcategories(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no subcategories found"})
	}
	return c.JSON(http.StatusOK, subs)
}

// CreateCategory handles POST /v1/category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req model.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CategoryName = strings.TrimSpace(req.CategoryName)
	if req.CategoryName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_name is required"})
	}

	ctx := c.Request().Context()
	if _, err := h.Categories.GetRootByName(ctx, req.CategoryName); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category with this name already exists"})
	} else if !errors.Is(err, repository.ErrCategoryNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	cat := &model.Category{
		ID:           uuid.NewString(),
		CategoryName: req.CategoryName,
	}
	if err := h.Categories.Create(ctx, cat); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create category"})
	}
	return c.JSON(http.StatusOK, cat)
}

// CreateSubcategory handles POST /v1/subcategory. The declared parent must
// exist and be a root category.
func (h *CategoryHandler) CreateSubcategory(c echo.Context) error {
	var req model.CreateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CategoryName = strings.TrimSpace(req.CategoryName)
	if req.CategoryName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_name is required"})
	}
	if !validUUID(req.ParentID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not parse parent_id as a uuid"})
	}

	ctx := c.Request().Context()
	if _, err := h.Categories.GetRootByID(ctx, req.ParentID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "parent category does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.Categories.GetSubcategoryByName(ctx, req.ParentID, req.CategoryName); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subcategory with this name already exists"})
	} else if !errors.Is(err, repository.ErrCategoryNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	sub := &model.Category{
		ID:           uuid.NewString(),
		CategoryName: req.CategoryName,
		ParentID:     &req.ParentID,
	}
	if err := h.Categories.Create(ctx, sub); err != nil {
		if repository.IsDuplicateKey(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "subcategory with this name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create subcategory"})
	}
	return c.JSON(http.StatusOK, sub)
}
