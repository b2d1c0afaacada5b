package recording

import (
	"database/sql"
	"fmt"
	"strings"
)

// A Reader loads recorded experiment results back from a SQLite file.
type Reader struct {
	db *sql.DB
}

// OpenReader opens a results database for reading.
func OpenReader(path string) (*Reader, error) {
	filename := path
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename += ".sqlite3"
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}

	return &Reader{db: db}, nil
}

// Close closes the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Tables returns the names of all recorded tables.
func (r *Reader) Tables() ([]string, error) {
	rows, err := r.db.Query(
		"SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// ReadAll returns every row of a table as column-name to value maps, in
// insertion order.
func (r *Reader) ReadAll(tableName string) ([]map[string]any, error) {
	if !isSafeName(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	rows, err := r.db.Query("SELECT * FROM " + tableName)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", tableName, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// ReadXY returns two numeric columns of a table as paired samples.
func (r *Reader) ReadXY(tableName, xCol, yCol string) ([][2]float64, error) {
	if !isSafeName(tableName) || !isSafeName(xCol) || !isSafeName(yCol) {
		return nil, fmt.Errorf("invalid identifier")
	}

	rows, err := r.db.Query(
		"SELECT " + xCol + ", " + yCol + " FROM " + tableName)
	if err != nil {
		return nil, fmt.Errorf("read curve %s(%s, %s): %w",
			tableName, xCol, yCol, err)
	}
	defer rows.Close()

	var points [][2]float64
	for rows.Next() {
		var x, y float64
		if err := rows.Scan(&x, &y); err != nil {
			return nil, err
		}
		points = append(points, [2]float64{x, y})
	}

	return points, rows.Err()
}

func isSafeName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}

	return true
}
