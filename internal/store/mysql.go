package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

const createTasksTable = `CREATE TABLE IF NOT EXISTS list_tasks (
    id VARCHAR(64) PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    owner VARCHAR(100) NOT NULL,
    created_at DATETIME NOT NULL,
    percent INT NOT NULL DEFAULT 0,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    sub_description TEXT,
    logo VARCHAR(500),
    href VARCHAR(500),
    position BIGINT NOT NULL AUTO_INCREMENT UNIQUE
)`

// MySQL is a Backend stored in a MySQL table. Newest rows are listed first.
type MySQL struct {
	db *sql.DB
}

// OpenMySQL connects to dsn, checks the connection and creates the table.
func OpenMySQL(ctx context.Context, dsn string) (*MySQL, error) {
	cfg, err := mysqlConfig(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	m, err := newMySQL(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

// mysqlConfig parses dsn and forces the options the backend depends on:
// parseTime so DATETIME columns scan into time.Time, and clientFoundRows so
// an UPDATE that leaves a row unchanged still counts it as affected.
func mysqlConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg, nil
}

func newMySQL(ctx context.Context, db *sql.DB) (*MySQL, error) {
	if _, err := db.ExecContext(ctx, createTasksTable); err != nil {
		return nil, fmt.Errorf("migrate list_tasks: %w", err)
	}
	return &MySQL{db: db}, nil
}

// Close closes the connection pool.
func (m *MySQL) Close() error { return m.db.Close() }

// List implements Backend.
func (m *MySQL) List(ctx context.Context, count int) ([]api.Task, error) {
	query := `SELECT id, title, owner, created_at, percent, status,
        COALESCE(sub_description, ''), COALESCE(logo, ''), COALESCE(href, '')
        FROM list_tasks ORDER BY position DESC`
	var args []any
	if count > 0 {
		query += " LIMIT ?"
		args = append(args, count)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []api.Task{}
	for rows.Next() {
		var t api.Task
		var status string
		if err := rows.Scan(&t.ID, &t.Title, &t.Owner, &t.CreatedAt, &t.Percent, &status,
			&t.SubDescription, &t.Logo, &t.Href); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = api.ProgressStatus(status)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Create implements Backend.
func (m *MySQL) Create(ctx context.Context, fields api.TaskFields) (api.Task, error) {
	task := newTask(uuid.NewString(), fields)
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO list_tasks (id, title, owner, created_at, percent, status, sub_description)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Owner, task.CreatedAt, task.Percent, string(task.Status), nullIfEmpty(task.SubDescription))
	if err != nil {
		return api.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// Update implements Backend.
func (m *MySQL) Update(ctx context.Context, id string, fields api.TaskFields) (api.Task, error) {
	res, err := m.db.ExecContext(ctx,
		`UPDATE list_tasks SET title = ?, owner = ?, created_at = ?, sub_description = ? WHERE id = ?`,
		fields.Title, fields.Owner, fields.CreatedAt, nullIfEmpty(fields.SubDescription), id)
	if err != nil {
		return api.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	if err := expectOneRow(res, id); err != nil {
		return api.Task{}, err
	}

	var t api.Task
	var status string
	err = m.db.QueryRowContext(ctx,
		`SELECT id, title, owner, created_at, percent, status,
        COALESCE(sub_description, ''), COALESCE(logo, ''), COALESCE(href, '')
        FROM list_tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.Title, &t.Owner, &t.CreatedAt, &t.Percent, &status, &t.SubDescription, &t.Logo, &t.Href)
	if err != nil {
		return api.Task{}, fmt.Errorf("reload task %s: %w", id, err)
	}
	t.Status = api.ProgressStatus(status)
	return t, nil
}

// Delete implements Backend.
func (m *MySQL) Delete(ctx context.Context, id string) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM list_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return expectOneRow(res, id)
}

// Seed inserts tasks when the table is empty.
func (m *MySQL) Seed(ctx context.Context, tasks []api.Task) error {
	var n int
	if err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM list_tasks`).Scan(&n); err != nil {
		return fmt.Errorf("count tasks: %w", err)
	}
	if n > 0 {
		return nil
	}

	// insert oldest first so the first task ends up with the highest position
	for i := len(tasks) - 1; i >= 0; i-- {
		t := tasks[i]
		_, err := m.db.ExecContext(ctx,
			`INSERT INTO list_tasks (id, title, owner, created_at, percent, status, sub_description, logo, href)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Owner, t.CreatedAt, t.Percent, string(t.Status),
			nullIfEmpty(t.SubDescription), nullIfEmpty(t.Logo), nullIfEmpty(t.Href))
		if err != nil {
			return fmt.Errorf("seed task %s: %w", t.ID, err)
		}
	}
	return nil
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
