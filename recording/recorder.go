// Package recording stores experiment results in per-run SQLite files.
// Tables are declared from plain result structs; rows are buffered and
// written in batches.
package recording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	// SQLite driver for the results database.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// Recorder stores experiment result rows.
type Recorder interface {
	// CreateTable creates a table whose columns are the fields of the
	// sample struct.
	CreateTable(tableName string, sample any)

	// Insert buffers one row for a table created earlier.
	Insert(tableName string, row any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered rows to the database.
	Flush()

	// Close flushes and closes the database.
	Close()
}

// NewRecorder creates a SQLite-backed Recorder. An empty path picks a
// run-scoped file name.
func NewRecorder(path string) Recorder {
	w := &sqliteWriter{
		dbPath:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	rows       []any
}

type sqliteWriter struct {
	db *sql.DB

	dbPath    string
	tables    map[string]*table
	batchSize int
	rowCount  int
}

func (w *sqliteWriter) init() {
	if w.dbPath == "" {
		w.dbPath = "dhcn_results_" + xid.New().String()
	}

	filename := w.dbPath
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename += ".sqlite3"
	}

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Recording results to %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.db = db
}

func isAllowedKind(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

func fieldNames(sample any) []string {
	t := reflect.TypeOf(sample)
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, t.Field(i).Name)
	}
	return names
}

func (w *sqliteWriter) mustBeFlat(sample any) {
	t := reflect.TypeOf(sample)
	for i := 0; i < t.NumField(); i++ {
		if !isAllowedKind(t.Field(i).Type.Kind()) {
			panic(fmt.Errorf("field %s of %s is not a scalar column",
				t.Field(i).Name, t.Name()))
		}
	}
}

// CreateTable creates a table whose columns are the fields of the sample
// struct.
func (w *sqliteWriter) CreateTable(tableName string, sample any) {
	w.mustBeFlat(sample)

	fields := strings.Join(fieldNames(sample), ", \n\t")
	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	w.mustExecute(createTableSQL)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sample),
		rows:       []any{},
	}
}

// Insert buffers one row for a table created earlier.
func (w *sqliteWriter) Insert(tableName string, row any) {
	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	t.rows = append(t.rows, row)

	w.rowCount++
	if w.rowCount >= w.batchSize {
		w.Flush()
	}
}

// ListTables returns the names of all created tables.
func (w *sqliteWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	return tables
}

// Flush writes all buffered rows to the database.
func (w *sqliteWriter) Flush() {
	if w.rowCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range w.tables {
		if len(t.rows) == 0 {
			continue
		}

		stmt := w.prepareInsert(tableName, t.rows[0])

		for _, row := range t.rows {
			v := []any{}

			value := reflect.ValueOf(row)
			for i := 0; i < value.NumField(); i++ {
				v = append(v, value.Field(i).Interface())
			}

			if _, err := stmt.Exec(v...); err != nil {
				panic(err)
			}
		}

		t.rows = nil
		stmt.Close()
	}

	w.rowCount = 0
}

// Close flushes and closes the database.
func (w *sqliteWriter) Close() {
	w.Flush()
	w.db.Close()
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.db.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func (w *sqliteWriter) prepareInsert(tableName string, sample any) *sql.Stmt {
	n := fieldNames(sample)
	for i := range n {
		n[i] = "?"
	}

	sqlStr := "INSERT INTO " + tableName + " VALUES (" +
		strings.Join(n, ", ") + ")"

	stmt, err := w.db.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}
