package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoryColumns = `"id", "user_id", "name"`

var rowColumns = []string{"id", "user_id", "name"}

func int64Ptr(v int64) *int64 { return &v }

func newCategoryTable(t *testing.T) (*Table[model.Category], pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	table, err := NewTable[model.Category](mock)
	require.NoError(t, err)
	return table, mock
}

func TestTableList(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + categoryColumns + ` FROM "common_categories" ORDER BY "id"`)).
		WillReturnRows(pgxmock.NewRows(rowColumns).
			AddRow(int64(1), nil, "Food").
			AddRow(int64(2), int64Ptr(9), "Rent"))

	categories, err := table.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, UserID: int64Ptr(9), Name: "Rent"},
	}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableListEmpty(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(`SELECT`).WillReturnRows(pgxmock.NewRows(rowColumns))

	categories, err := table.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestTableListStorageError(t *testing.T) {
	table, mock := newCategoryTable(t)

	pgErr := &pgconn.PgError{Code: "08006", Message: "connection failure"}
	mock.ExpectQuery(`SELECT`).WillReturnError(pgErr)

	_, err := table.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list common_categories")

	var target *pgconn.PgError
	assert.ErrorAs(t, err, &target)
}

func TestTableGet(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "common_categories" WHERE "id" = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(int64(1), nil, "Food"))

	category, err := table.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, model.Category{ID: 1, Name: "Food"}, *category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGetAbsent(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(`SELECT`).WithArgs(int64(42)).WillReturnRows(pgxmock.NewRows(rowColumns))

	category, err := table.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, category)
}

func TestTableFindBy(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE "name" = $1 ORDER BY "id" LIMIT 1`)).
		WithArgs("Food").
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(int64(3), nil, "Food"))

	category, err := table.FindBy(context.Background(), "name", "Food")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, int64(3), category.ID)

	_, err = table.FindBy(context.Background(), "name; DROP TABLE x", "Food")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = table.FindBy(context.Background(), "id", 1)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableCreate(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "common_categories" ("user_id", "name") VALUES ($1, $2) RETURNING ` + categoryColumns)).
		WithArgs(pgxmock.AnyArg(), "Food").
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(int64(1), nil, "Food"))

	created, err := table.Create(context.Background(), model.Category{Name: "Food"})
	require.NoError(t, err)
	assert.Equal(t, model.Category{ID: 1, Name: "Food"}, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableCreateUniqueViolation(t *testing.T) {
	table, mock := newCategoryTable(t)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "common_categories_name_key"}
	mock.ExpectQuery(`INSERT INTO`).WithArgs(pgxmock.AnyArg(), "Food").WillReturnError(pgErr)

	_, err := table.Create(context.Background(), model.Category{Name: "Food"})

	var target *pgconn.PgError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "23505", target.Code)
}

func TestTableUpdate(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "common_categories" SET "user_id" = $1, "name" = $2 WHERE "id" = $3 RETURNING ` + categoryColumns)).
		WithArgs(pgxmock.AnyArg(), "Groceries", int64(1)).
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(int64(1), int64Ptr(5), "Groceries"))

	updated, err := table.Update(context.Background(), model.Category{ID: 1, UserID: int64Ptr(5), Name: "Groceries"})
	require.NoError(t, err)
	assert.Equal(t, model.Category{ID: 1, UserID: int64Ptr(5), Name: "Groceries"}, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableUpdateMissingRow(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectQuery(`UPDATE`).
		WithArgs(pgxmock.AnyArg(), "Groceries", int64(9)).
		WillReturnRows(pgxmock.NewRows(rowColumns))

	_, err := table.Update(context.Background(), model.Category{ID: 9, Name: "Groceries"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTableUpdateStorageError(t *testing.T) {
	table, mock := newCategoryTable(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`UPDATE`).WithArgs(pgxmock.AnyArg(), "Groceries", int64(9)).WillReturnError(boom)

	_, err := table.Update(context.Background(), model.Category{ID: 9, Name: "Groceries"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestTableDelete(t *testing.T) {
	table, mock := newCategoryTable(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "common_categories" WHERE "id" = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, table.Delete(context.Background(), 1))
	assert.NoError(t, table.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

type badTableModel struct {
	ID int64 `db:"id"`
}

func (badTableModel) TableName() string   { return `categories"; DROP TABLE users; --` }
func (m badTableModel) PrimaryKey() int64 { return m.ID }
func (badTableModel) Columns() []string   { return nil }
func (badTableModel) Values() []any       { return nil }

type badColumnModel struct {
	ID int64 `db:"id"`
}

func (badColumnModel) TableName() string   { return "categories" }
func (m badColumnModel) PrimaryKey() int64 { return m.ID }
func (badColumnModel) Columns() []string   { return []string{"Name"} }
func (badColumnModel) Values() []any       { return []any{""} }

func TestNewTableRejectsInvalidIdentifiers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	_, err = NewTable[badTableModel](mock)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = NewTable[badColumnModel](mock)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
