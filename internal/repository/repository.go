// Package repository handles all interactions with storage.
//
// Table is a generic accessor bound to one table through the Model
// descriptor; NameList is the mutex-guarded in-process list behind
// /categories.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned by Update when no row has the given id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidIdentifier is returned for table or column names outside the allowlist.
	ErrInvalidIdentifier = errors.New("invalid SQL identifier")
)

// DBTX is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Model describes how an entity maps onto its table.
//
// The primary key column is always "id". Columns and Values list the
// mutable columns and their values in the same order. Entity fields carry
// `db` tags matching "id" plus Columns.
type Model interface {
	TableName() string
	PrimaryKey() int64
	Columns() []string
	Values() []any
}

// Store is the accessor contract services depend on. *Table satisfies it.
type Store[E Model] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id int64) (*E, error)
	FindBy(ctx context.Context, column string, value any) (*E, error)
	Create(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, entity E) (E, error)
	Delete(ctx context.Context, id int64) error
}
