// Package sqlerr handles database driver errors.
//
// It classifies *pgconn.PgError values by SQLSTATE and converts them into
// client-safe errs.HTTPError values (a unique violation becomes a 409, a
// foreign key violation a 400, anything unexpected a generic 500).
package sqlerr
