package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iliyamo/course-booking/internal/model"
)

// CourseRepo encapsulates all database queries related to courses and the
// bridge rows linking them to cities and subcategories.
type CourseRepo struct {
	db *sql.DB
}

// NewCourseRepo constructs a CourseRepo with the provided DB handle.
func NewCourseRepo(db *sql.DB) *CourseRepo { return &CourseRepo{db: db} }

// DB exposes the underlying pool so handlers can open transactions that
// span multiple repositories.
func (r *CourseRepo) DB() *sql.DB { return r.db }

// courseColumns selects the course row plus the denormalized name arrays.
// The correlated JSON_ARRAYAGG subqueries return NULL when a course has no
// links; scanStrings treats that as an empty list.
const courseColumns = `c.id, c.course_name, c.course_description, c.start_date, c.end_date,
       c.csn_entitled, c.max_seats, c.image, c.days, c.hours, c.price, c.sessions, c.visible,
       (SELECT JSON_ARRAYAGG(l.name)
          FROM course_locations cl JOIN locations l ON l.id = cl.location_id
         WHERE cl.course_id = c.id),
       (SELECT JSON_ARRAYAGG(cat.category_name)
          FROM course_categories cc JOIN categories cat ON cat.id = cc.category_id
         WHERE cc.course_id = c.id)`

// scanStrings decodes a JSON_ARRAYAGG column into a pointer slice. NULL
// aggregates (no joined rows) decode to an empty slice so that responses
// always carry an array.
func scanStrings(raw []byte) ([]*string, error) {
	if len(raw) == 0 {
		return []*string{}, nil
	}
	var out []*string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCourse(scan func(dest ...any) error) (*model.Course, error) {
	var c model.Course
	var cities, subs []byte
	if err := scan(
		&c.ID, &c.CourseName, &c.CourseDescription, &c.StartDate, &c.EndDate,
		&c.CSNEntitled, &c.MaxSeats, &c.Image, &c.Days, &c.Hours, &c.Price,
		&c.Sessions, &c.Visible, &cities, &subs,
	); err != nil {
		return nil, err
	}
	var err error
	if c.CityNames, err = scanStrings(cities); err != nil {
		return nil, err
	}
	if c.SubcategoryNames, err = scanStrings(subs); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns every course together with its joined city and
// subcategory names, ordered by name for deterministic output.
func (r *CourseRepo) ListAll(ctx context.Context) ([]*model.Course, error) {
	const q = `SELECT ` + courseColumns + ` FROM courses c ORDER BY c.course_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single course. It returns ErrCourseNotFound when the
// id matches no row.
func (r *CourseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	const q = `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = ?`
	c, err := scanCourse(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetByName fetches a course by its unique name. Used as the fast-path
// duplicate check before creation; ErrCourseNotFound means the name is free.
func (r *CourseRepo) GetByName(ctx context.Context, name string) (*model.Course, error) {
	const q = `SELECT ` + courseColumns + ` FROM courses c WHERE c.course_name = ?`
	c, err := scanCourse(r.db.QueryRowContext(ctx, q, name).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

// CreateTx inserts the course row within an existing transaction. A report
// of zero affected rows is surfaced as ErrNoRowsAffected so the caller can
// roll back. The caller owns commit/rollback.
func (r *CourseRepo) CreateTx(ctx context.Context, tx *sql.Tx, c *model.Course) error {
	const q = `INSERT INTO courses
	             (id, course_name, course_description, start_date, end_date,
	              csn_entitled, max_seats, image, days, hours, price, sessions, visible)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		c.ID, c.CourseName, c.CourseDescription, c.StartDate.UTC(), c.EndDate.UTC(),
		c.CSNEntitled, c.MaxSeats, c.Image, c.Days, c.Hours, c.Price, c.Sessions, c.Visible,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// AddLocationLinkTx inserts one course<->city bridge row and returns the
// number of rows affected. Duplicate links are tolerated by the schema.
func (r *CourseRepo) AddLocationLinkTx(ctx context.Context, tx *sql.Tx, courseID, locationID string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO course_locations (course_id, location_id) VALUES (?, ?)`,
		courseID, locationID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AddCategoryLinkTx inserts one course<->subcategory bridge row and returns
// the number of rows affected.
func (r *CourseRepo) AddCategoryLinkTx(ctx context.Context, tx *sql.Tx, courseID, categoryID string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO course_categories (course_id, category_id) VALUES (?, ?)`,
		courseID, categoryID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
