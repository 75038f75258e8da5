package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Row is one generic record keyed by column name.
type Row map[string]interface{}

type Repository interface {
	List(ctx context.Context, table string) ([]Row, error)
	Get(ctx context.Context, table string, id int) (Row, error)
	Create(ctx context.Context, table string, fields map[string]interface{}) (Row, error)
	Update(ctx context.Context, table string, id int, fields map[string]interface{}) (Row, error)
	Delete(ctx context.Context, table string, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, table string) ([]Row, error) {
	spec, ok := lookupTable(table)
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, spec.readColumns, table)
	return r.queryRows(ctx, query)
}

func (r *repository) Get(ctx context.Context, table string, id int) (Row, error) {
	spec, ok := lookupTable(table)
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, spec.readColumns, table)
	rows, err := r.queryRows(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return rows[0], nil
}

func (r *repository) Create(ctx context.Context, table string, fields map[string]interface{}) (Row, error) {
	spec, columns, args, err := prepareWrite(table, fields)
	if err != nil {
		return nil, err
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), spec.readColumns)

	rows, err := r.queryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (r *repository) Update(ctx context.Context, table string, id int, fields map[string]interface{}) (Row, error) {
	spec, columns, args, err := prepareWrite(table, fields)
	if err != nil {
		return nil, err
	}

	setClauses := make([]string, len(columns))
	for i, col := range columns {
		setClauses[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		table, strings.Join(setClauses, ", "), len(args), spec.readColumns)

	rows, err := r.queryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return rows[0], nil
}

func (r *repository) Delete(ctx context.Context, table string, id int) error {
	if _, ok := lookupTable(table); !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) queryRows(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	result, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	rows := []Row{}
	for result.Next() {
		row := Row{}
		if err := result.MapScan(row); err != nil {
			return nil, err
		}
		for key, value := range row {
			if raw, ok := value.([]byte); ok {
				row[key] = string(raw)
			}
		}
		rows = append(rows, row)
	}
	return rows, result.Err()
}

// prepareWrite validates columns against the allowlist and converts
// JSON-decoded values into driver-compatible ones. Column order is
// sorted so statements are deterministic.
func prepareWrite(table string, fields map[string]interface{}) (tableSpec, []string, []interface{}, error) {
	spec, ok := lookupTable(table)
	if !ok {
		return tableSpec{}, nil, nil, fmt.Errorf("unknown table %q", table)
	}
	if len(fields) == 0 {
		return tableSpec{}, nil, nil, fmt.Errorf("no columns in request")
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		if !spec.writable[col] {
			return tableSpec{}, nil, nil, fmt.Errorf("unknown column %q", col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		value, err := toDBValue(fields[col])
		if err != nil {
			return tableSpec{}, nil, nil, fmt.Errorf("column %q: %w", col, err)
		}
		args = append(args, value)
	}
	return spec, columns, args, nil
}

func toDBValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		strs := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				// Mixed arrays go to jsonb.
				return json.Marshal(v)
			}
			strs = append(strs, s)
		}
		return pq.StringArray(strs), nil
	case map[string]interface{}:
		return json.Marshal(v)
	default:
		return value, nil
	}
}
