package model

// Category is a row of the two-level subject hierarchy. Like Location, a
// category with a NULL parent is a root category and one with a parent is a
// subcategory; no third level exists.
type Category struct {
	ID           string  `json:"id"`            // categories.id (uuid)
	CategoryName string  `json:"category_name"` // categories.category_name
	ParentID     *string `json:"parent_id"`     // categories.parent_id, NULL for roots
}

// CreateCategoryRequest is the body for POST /v1/category.
type CreateCategoryRequest struct {
	CategoryName string `json:"category_name"`
}

// CreateSubcategoryRequest is the body for POST /v1/subcategory. ParentID
// must name an existing root category.
type CreateSubcategoryRequest struct {
	CategoryName string `json:"category_name"`
	ParentID     string `json:"parent_id"`
}

// NestedCategory is the assembled category -> subcategories tree node.
type NestedCategory struct {
	CategoryID    string        `json:"category_id"`
	CategoryName  string        `json:"category_name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is one child entry of an assembled NestedCategory.
type Subcategory struct {
	SubcategoryID   string `json:"subcategory_id"`
	SubcategoryName string `json:"subcategory_name"`
}
