package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iliyamo/course-booking/internal/model"
)

// LocationRepo encapsulates database access for the two-level geographic
// hierarchy. Districts are rows with a NULL parent_id, cities reference a
// district. All parent lookups are root-only so a city can never become a
// parent itself.
type LocationRepo struct {
	db *sql.DB
}

// NewLocationRepo constructs a LocationRepo with the provided DB handle.
func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// DistrictsWithCities returns one tree row per district with the ids and
// names of its cities as parallel JSON arrays. A district without cities
// yields a single NULL position in both arrays (LEFT JOIN artifact); the
// assembler drops those positions.
func (r *LocationRepo) DistrictsWithCities(ctx context.Context) ([]model.TreeRow, error) {
	const q = `SELECT d.id, d.name, JSON_ARRAYAGG(c.id), JSON_ARRAYAGG(c.name)
	           FROM locations d
	           LEFT JOIN locations c ON c.parent_id = d.id
	           WHERE d.parent_id IS NULL
	           GROUP BY d.id, d.name
	           ORDER BY d.name`
	return queryTreeRows(ctx, r.db, q)
}

// GetDistrictByID fetches a district-level location. Lookups are restricted
// to parent_id IS NULL, which is what enforces the two-level invariant at
// city creation time.
func (r *LocationRepo) GetDistrictByID(ctx context.Context, id string) (*model.Location, error) {
	const q = `SELECT id, name, parent_id, code FROM locations WHERE id = ? AND parent_id IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetDistrictByName fetches a district by name. MySQL unique indexes admit
// repeated NULLs in parent_id, so this pre-check is what keeps district
// names unique.
func (r *LocationRepo) GetDistrictByName(ctx context.Context, name string) (*model.Location, error) {
	const q = `SELECT id, name, parent_id, code FROM locations WHERE name = ? AND parent_id IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

// GetCityByName fetches a city by name within one district. Used as the
// duplicate-name fast path before insert.
func (r *LocationRepo) GetCityByName(ctx context.Context, parentID, name string) (*model.Location, error) {
	const q = `SELECT id, name, parent_id, code FROM locations WHERE name = ? AND parent_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name, parentID))
}

// ListDistricts returns all root locations ordered by name.
func (r *LocationRepo) ListDistricts(ctx context.Context) ([]*model.Location, error) {
	const q = `SELECT id, name, parent_id, code FROM locations WHERE parent_id IS NULL ORDER BY name`
	return r.list(ctx, q)
}

// ListCitiesByDistrict returns all cities under the given district ordered
// by name. An empty slice means the district has no cities (or does not
// exist; callers that care pre-check the parent).
func (r *LocationRepo) ListCitiesByDistrict(ctx context.Context, parentID string) ([]*model.Location, error) {
	const q = `SELECT id, name, parent_id, code FROM locations WHERE parent_id = ? ORDER BY name`
	return r.list(ctx, q, parentID)
}

// Create inserts one location row. Pass a nil parentID for districts.
// Returns ErrNoRowsAffected on a zero-row insert and propagates duplicate
// key errors (unique index on parent_id+name) for the handler to translate.
func (r *LocationRepo) Create(ctx context.Context, loc *model.Location) error {
	const q = `INSERT INTO locations (id, name, parent_id, code) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, loc.ID, loc.Name, loc.ParentID, loc.Code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *LocationRepo) scanOne(row *sql.Row) (*model.Location, error) {
	var l model.Location
	if err := row.Scan(&l.ID, &l.Name, &l.ParentID, &l.Code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepo) list(ctx context.Context, q string, args ...any) ([]*model.Location, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Location, 0)
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.ParentID, &l.Code); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// queryTreeRows runs a tree query whose last two columns are JSON arrays of
// child ids and child names, and decodes them into parallel pointer slices.
// Both hierarchies (locations and categories) share this scan path.
func queryTreeRows(ctx context.Context, db *sql.DB, q string, args ...any) ([]model.TreeRow, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TreeRow, 0)
	for rows.Next() {
		var tr model.TreeRow
		var ids, names []byte
		if err := rows.Scan(&tr.ParentID, &tr.ParentName, &ids, &names); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ids, &tr.ChildIDs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(names, &tr.ChildNames); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
