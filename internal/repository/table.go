package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const primaryKeyColumn = "id"

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Table is a CRUD accessor for the entity type E.
//
// Identifiers come from E's Model methods, are checked against
// identifierPattern and quoted once at construction. Values are only ever
// bound as $n parameters.
type Table[E Model] struct {
	db      DBTX
	name    string
	table   string
	columns []string
	quoted  []string
	selects string
}

// NewTable builds the accessor for E over db.
func NewTable[E Model](db DBTX) (*Table[E], error) {
	var zero E

	name := zero.TableName()
	if !identifierPattern.MatchString(name) {
		return nil, errors.Wrapf(ErrInvalidIdentifier, "table %q", name)
	}

	columns := zero.Columns()
	quoted := make([]string, 0, len(columns))
	for _, column := range columns {
		if !identifierPattern.MatchString(column) || column == primaryKeyColumn {
			return nil, errors.Wrapf(ErrInvalidIdentifier, "column %q of %s", column, name)
		}
		quoted = append(quoted, pgx.Identifier{column}.Sanitize())
	}

	selects := append([]string{pgx.Identifier{primaryKeyColumn}.Sanitize()}, quoted...)

	return &Table[E]{
		db:      db,
		name:    name,
		table:   pgx.Identifier{name}.Sanitize(),
		columns: columns,
		quoted:  quoted,
		selects: strings.Join(selects, ", "),
	}, nil
}

// List returns every row ordered by id.
func (t *Table[E]) List(ctx context.Context) ([]E, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s ORDER BY "id"`, t.selects, t.table)

	rows, err := t.db.Query(ctx, sql)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", t.name)
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", t.name)
	}
	return entities, nil
}

// Get returns the row with the given id. An absent row yields nil, nil.
func (t *Table[E]) Get(ctx context.Context, id int64) (*E, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE "id" = $1`, t.selects, t.table)
	return t.collectOptional(ctx, "get", sql, id)
}

// FindBy returns the first row (lowest id) whose column equals value, or
// nil, nil. column must be one of the mutable columns.
func (t *Table[E]) FindBy(ctx context.Context, column string, value any) (*E, error) {
	idx := t.columnIndex(column)
	if idx < 0 {
		return nil, errors.Wrapf(ErrInvalidIdentifier, "column %q of %s", column, t.name)
	}

	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY "id" LIMIT 1`, t.selects, t.table, t.quoted[idx])
	return t.collectOptional(ctx, "find", sql, value)
}

// Create inserts entity and returns the stored row, generated id included.
func (t *Table[E]) Create(ctx context.Context, entity E) (E, error) {
	placeholders := make([]string, len(t.quoted))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		t.table,
		strings.Join(t.quoted, ", "),
		strings.Join(placeholders, ", "),
		t.selects,
	)

	created, err := t.collectOne(ctx, sql, entity.Values()...)
	if err != nil {
		var zero E
		return zero, errors.Wrapf(err, "create %s", t.name)
	}
	return created, nil
}

// Update overwrites every mutable column of the row with entity's id.
// It returns ErrNotFound when no such row exists.
func (t *Table[E]) Update(ctx context.Context, entity E) (E, error) {
	assignments := make([]string, len(t.quoted))
	for i, column := range t.quoted {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}

	sql := fmt.Sprintf(`UPDATE %s SET %s WHERE "id" = $%d RETURNING %s`,
		t.table,
		strings.Join(assignments, ", "),
		len(t.quoted)+1,
		t.selects,
	)

	args := append(entity.Values(), entity.PrimaryKey())

	updated, err := t.collectOne(ctx, sql, args...)
	if err != nil {
		var zero E
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errors.Wrapf(ErrNotFound, "update %s id %d", t.name, entity.PrimaryKey())
		}
		return zero, errors.Wrapf(err, "update %s", t.name)
	}
	return updated, nil
}

// Delete removes the row with the given id. Deleting a missing row is not an error.
func (t *Table[E]) Delete(ctx context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE "id" = $1`, t.table)

	if _, err := t.db.Exec(ctx, sql, id); err != nil {
		return errors.Wrapf(err, "delete %s", t.name)
	}
	return nil
}

func (t *Table[E]) columnIndex(column string) int {
	for i, c := range t.columns {
		if c == column {
			return i
		}
	}
	return -1
}

func (t *Table[E]) collectOne(ctx context.Context, sql string, args ...any) (E, error) {
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		var zero E
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[E])
}

func (t *Table[E]) collectOptional(ctx context.Context, op, sql string, arg any) (*E, error) {
	entity, err := t.collectOne(ctx, sql, arg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", op, t.name)
	}
	return &entity, nil
}
