// Package sqlite persists extracted document text in SQLite so restarts do
// not repeat extraction. It uses modernc.org/sqlite, so no cgo is needed.
//
// The database lives at <dir>/documents.db (default ~/.docchat/data) and
// runs in WAL mode with a 5s busy timeout. Its schema comes from the
// numbered migrations embedded from migrations/; only the .up.sql halves
// are applied, and each applied version is recorded in schema_migrations.
package sqlite
