package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

var taskColumns = []string{"id", "title", "owner", "created_at", "percent", "status",
	"sub_description", "logo", "href"}

func newTestMySQL(t *testing.T) (*MySQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS list_tasks")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	m, err := newMySQL(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return m, mock
}

func TestMySQLConfigForcesOptions(t *testing.T) {
	cfg, err := mysqlConfig("user:pass@tcp(127.0.0.1:3306)/basiclist")
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
	assert.Contains(t, cfg.FormatDSN(), "clientFoundRows=true")

	_, err = mysqlConfig("no database here")
	assert.ErrorContains(t, err, "parse mysql dsn")
}

func TestMySQLUpdateUnchangedRow(t *testing.T) {
	m, mock := newTestMySQL(t)
	fields := api.TaskFields{Title: "Alipay", Owner: "付晓晓", CreatedAt: testNow}

	// a matched row counts even when none of its values change
	mock.ExpectExec(regexp.QuoteMeta("UPDATE list_tasks SET")).
		WithArgs("Alipay", "付晓晓", sqlmock.AnyArg(), sqlmock.AnyArg(), "fake-list-0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title")).
		WithArgs("fake-list-0").
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow("fake-list-0", "Alipay", "付晓晓", testNow, int64(70), "active", "", "", ""))

	task, err := m.Update(context.Background(), "fake-list-0", fields)
	require.NoError(t, err)
	assert.Equal(t, "Alipay", task.Title)
	assert.Equal(t, api.StatusActive, task.Status)
	assert.Equal(t, 70, task.Percent)
}

func TestMySQLUpdateUnknownID(t *testing.T) {
	m, mock := newTestMySQL(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE list_tasks SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := m.Update(context.Background(), "missing", api.TaskFields{Title: "x", Owner: "周勇"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMySQLDeleteUnknownID(t *testing.T) {
	m, mock := newTestMySQL(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM list_tasks WHERE id = ?")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, m.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestMySQLListLimit(t *testing.T) {
	m, mock := newTestMySQL(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY position DESC LIMIT ?")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow("b", "Bootstrap", "周毛毛", testNow, int64(80), "exception", "desc", "", "").
			AddRow("a", "Alipay", "付晓晓", testNow, int64(60), "normal", "", "", ""))

	tasks, err := m.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].ID)
	assert.Equal(t, api.StatusException, tasks[0].Status)
	assert.Equal(t, "desc", tasks[0].SubDescription)
}

func TestMySQLSeedSkipsNonEmptyTable(t *testing.T) {
	m, mock := newTestMySQL(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM list_tasks")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	require.NoError(t, m.Seed(context.Background(), DemoTasks(2, []string{"周勇"}, testNow)))
}
