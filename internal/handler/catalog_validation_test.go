package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListSubcategoriesRejectsBadUUID(t *testing.T) {
	h := NewCategoryHandler(nil)
	c, rec := newJSONContext(t, http.MethodGet, "/", "")
	c.SetPath("/v1/subcategories/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	assert.NoError(t, h.ListSubcategories(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCitiesRejectsBadUUID(t *testing.T) {
	h := NewLocationHandler(nil)
	c, rec := newJSONContext(t, http.MethodGet, "/", "")
	c.SetPath("/v1/cities/:id")
	c.SetParamNames("id")
	c.SetParamValues("stockholm")

	assert.NoError(t, h.ListCitiesByDistrict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCityRejectsBadDistrictID(t *testing.T) {
	h := NewLocationHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/city",
		`{"name":"Lund","district_id":"not-a-uuid"}`)

	assert.NoError(t, h.CreateCity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "district_id")
}

func TestCreateDistrictRequiresName(t *testing.T) {
	h := NewLocationHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/district", `{"code":12}`)

	assert.NoError(t, h.CreateDistrict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSubcategoryRejectsBadParentID(t *testing.T) {
	h := NewCategoryHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/subcategory",
		`{"category_name":"Pottery","parent_id":"crafts"}`)

	assert.NoError(t, h.CreateSubcategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "parent_id")
}

func TestCreateCategoryRequiresName(t *testing.T) {
	h := NewCategoryHandler(nil)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/category", `{}`)

	assert.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
