package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/course-booking/internal/model"
)

// CategoryRepo mirrors LocationRepo for the subject hierarchy: root
// categories have a NULL parent_id, subcategories reference a root.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the provided DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// CategoriesWithSubcategories returns one tree row per root category with
// subcategory ids and names as parallel JSON arrays, NULL-padded for roots
// without children.
func (r *CategoryRepo) CategoriesWithSubcategories(ctx context.Context) ([]model.TreeRow, error) {
	const q = `SELECT p.id, p.category_name, JSON_ARRAYAGG(s.id), JSON_ARRAYAGG(s.category_name)
	           FROM categories p
	           LEFT JOIN categories s ON s.parent_id = p.id
	           WHERE p.parent_id IS NULL
	           GROUP BY p.id, p.category_name
	           ORDER BY p.category_name`
	return queryTreeRows(ctx, r.db, q)
}

// GetRootByID fetches a root category; subcategories are excluded so they
// can never be used as a parent.
func (r *CategoryRepo) GetRootByID(ctx context.Context, id string) (*model.Category, error) {
	const q = `SELECT id, category_name, parent_id FROM categories WHERE id = ? AND parent_id IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetRootByName fetches a root category by name. Used as the duplicate-name
// fast path for POST /category.
func (r *CategoryRepo) GetRootByName(ctx context.Context, name string) (*model.Category, error) {
	const q = `SELECT id, category_name, parent_id FROM categories WHERE category_name = ? AND parent_id IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

// GetSubcategoryByName fetches a subcategory by name within one root.
func (r *CategoryRepo) GetSubcategoryByName(ctx context.Context, parentID, name string) (*model.Category, error) {
	const q = `SELECT id, category_name, parent_id FROM categories WHERE category_name = ? AND parent_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name, parentID))
}

// ListSubcategories returns all subcategories under the given root ordered
// by name.
func (r *CategoryRepo) ListSubcategories(ctx context.Context, parentID string) ([]*model.Category, error) {
	const q = `SELECT id, category_name, parent_id FROM categories WHERE parent_id = ? ORDER BY category_name`
	rows, err := r.db.QueryContext(ctx, q, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.ParentID); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts one category row. Pass a nil parentID for roots. Zero
// affected rows surface as ErrNoRowsAffected; duplicate names hit the
// unique index and propagate as a 1062 error.
func (r *CategoryRepo) Create(ctx context.Context, cat *model.Category) error {
	const q = `INSERT INTO categories (id, category_name, parent_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, cat.ID, cat.CategoryName, cat.ParentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *CategoryRepo) scanOne(row *sql.Row) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.CategoryName, &c.ParentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}
